package worker

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const MaxPictureSize = 5 << 20 // 5MB

type CreateWorkerRequest struct {
	Name           string          `json:"name"`
	JoiningDate    string          `json:"joiningDate"`
	DailyWage      decimal.Decimal `json:"dailyWage"`
	ProfilePicture *string         `json:"profilePicture,omitempty"`
}

func (r *CreateWorkerRequest) Validate(today calendar.Date) error {
	r.Name = strings.TrimSpace(r.Name)
	return validateFields(r.Name, r.JoiningDate, r.DailyWage, today).Err()
}

// UpdateWorkerRequest carries the full record; omitted optional fields are cleared.
type UpdateWorkerRequest struct {
	ID             string          `json:"-"`
	Name           string          `json:"name"`
	JoiningDate    string          `json:"joiningDate"`
	DailyWage      decimal.Decimal `json:"dailyWage"`
	ProfilePicture *string         `json:"profilePicture,omitempty"`
}

func (r *UpdateWorkerRequest) Validate(today calendar.Date) error {
	r.Name = strings.TrimSpace(r.Name)
	errs := validateFields(r.Name, r.JoiningDate, r.DailyWage, today)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.Err()
}

func validateFields(name, joiningDate string, dailyWage decimal.Decimal, today calendar.Date) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.MinLength(name, 2) {
		errs.Add("name", "Name must be at least 2 characters")
	}

	if !validator.AtLeast(dailyWage, 1) {
		errs.Add("dailyWage", "Daily wage must be at least 1")
	} else if !validator.IsStorableAmount(dailyWage) {
		errs.Add("dailyWage", "Daily wage must have at most 2 decimal places and be less than 10000000000")
	}

	if validator.IsEmpty(joiningDate) {
		errs.Add("joiningDate", "Please select a joining date")
	} else if date, ok := validator.IsValidDate(joiningDate); !ok {
		errs.Add("joiningDate", "joiningDate must be in YYYY-MM-DD format")
	} else if date.After(today) {
		errs.Add("joiningDate", "joiningDate cannot be in the future")
	} else if date.Before(MinJoiningDate) {
		errs.Add("joiningDate", "joiningDate cannot be before "+MinJoiningDate.String())
	}

	return errs
}

type UploadPictureRequest struct {
	WorkerID   string
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r *UploadPictureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("workerId", "workerId is required")
	}

	if r.FileHeader == nil {
		errs.Add("photo", "Please upload an image file")
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(ext, []string{".jpg", ".jpeg", ".png"}) {
			errs.Add("photo", "invalid file type: only jpg, jpeg, png allowed")
		} else if r.FileHeader.Size > MaxPictureSize {
			errs.Add("photo", "Image must be less than 5MB")
		}
	}

	return errs.Err()
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	JoiningDate    string          `json:"joiningDate"`
	DailyWage      decimal.Decimal `json:"dailyWage"`
	ProfilePicture *string         `json:"profilePicture,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		JoiningDate:    w.JoiningDate.String(),
		DailyWage:      w.DailyWage,
		ProfilePicture: w.ProfilePicture,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}
