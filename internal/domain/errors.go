package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrDuplicatePhone          = errors.New("phone number already registered")
	ErrPetitionNotFound        = errors.New("petition not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrDuplicateCategory       = errors.New("category already exists")
	ErrInvalidCategoryName     = errors.New("category name must be 3-15 characters")
	ErrDraftIncomplete         = errors.New("draft does not pass all wizard steps")
	ErrEmptyComment            = errors.New("comment body is empty")
	ErrAlreadySigned           = errors.New("petition already signed by this user")
	ErrConstituencyDenied      = errors.New("signer constituency not accepted for this petition")
	ErrAadharRequired          = errors.New("petition requires signers to have an Aadhar number on file")
	ErrChallengeNotFound       = errors.New("verification challenge not found or expired")
	ErrChallengeCode           = errors.New("verification code does not match")
	ErrTooManyAttempts         = errors.New("too many verification attempts")
	ErrPhoneNotVerified        = errors.New("phone number is not verified")
	ErrUnsupportedFileType     = errors.New("unsupported image type")
	ErrFileTooLarge            = errors.New("image exceeds maximum allowed size")
	ErrUploadFailed            = errors.New("image upload to storage failed")
	ErrPasswordLoginNotAllowed = errors.New("this account uses phone sign-in; request an OTP instead")
)
