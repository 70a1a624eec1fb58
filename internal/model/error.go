package model

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrPartNotFound        = errors.New("part not found")
	ErrCategoryMismatch    = errors.New("part belongs to another category")
	ErrPartOutOfStock      = errors.New("part out of stock")
	ErrIncompatible        = errors.New("part is incompatible with the current build")
	ErrBuildNotFound       = errors.New("build not found")
	ErrCartIndexOutOfRange = errors.New("cart index out of range")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrCatalogNotLoaded    = errors.New("catalog not loaded")
	ErrEventNotPublished   = errors.New("event not published")
)
