package services

import "errors"

// Failure kinds surfaced by the product and folder services. Controllers
// match these with errors.Is and translate them to HTTP status codes.
var (
	ErrProductNotFound = errors.New("product does not exist")
	ErrFolderNotFound  = errors.New("folder does not exist")

	// ErrMyPriceTooLow rejects a target price below models.MinMyPrice.
	ErrMyPriceTooLow = errors.New("my price is below the allowed minimum")

	// ErrNotOwner rejects a caller who does not own every entity the
	// operation touches.
	ErrNotOwner = errors.New("not the owner of the product or folder")

	// ErrDuplicateFolder rejects filing a product into a folder it is
	// already in.
	ErrDuplicateFolder = errors.New("product is already in this folder")

	// ErrDuplicateFolderName rejects creating a folder with a name the
	// user already uses.
	ErrDuplicateFolderName = errors.New("folder name already exists")
)
