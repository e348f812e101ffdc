package domain

// UserRole defines the platform role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// PetitionStatus represents the lifecycle of a petition.
type PetitionStatus string

const (
	PetitionStatusActive PetitionStatus = "active"
	PetitionStatusClosed PetitionStatus = "closed"
	PetitionStatusWon    PetitionStatus = "won"
)

// ImageType represents the allowed image types for petition uploads.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedImageContentTypes maps MIME content types back to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
}

// AllowedImageExtensions maps file extensions (without dot) to ImageType.
var AllowedImageExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
}
