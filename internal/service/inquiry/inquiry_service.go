package inquiry

import (
	"context"

	"manomangal/internal/domain"
	"manomangal/internal/repository"

	"github.com/google/uuid"
)

type InquiryUseCase interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.ContactInquiry, error)
}

type CreateInquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type InquiryService struct {
	inquiries repository.InquiryRepository
}

func NewInquiryService(inquiries repository.InquiryRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

func (s *InquiryService) Create(ctx context.Context, input CreateInquiryInput) (*domain.ContactInquiry, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Message == "" {
		return nil, domain.NewValidationError("Name, email, phone and message are required")
	}

	inquiry := &domain.ContactInquiry{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  domain.InquiryStatusNew,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

var _ InquiryUseCase = (*InquiryService)(nil)
