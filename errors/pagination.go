package errors

const (
	InvalidLimitErrorCode         = 200_001
	InvalidCursorErrorCode        = 200_002
	InvalidSortDirectionErrorCode = 200_003
	ObjectIDNotFoundErrorCode     = 200_004
	DuplicatedObjectIDErrorCode   = 200_005
	MatchTypeInvalidErrorCode     = 200_006
)

// InvalidLimitError indicates caller gives a negative page size when listing items
var InvalidLimitError = new(InvalidLimitErrorCode, "InvalidLimit", "Page limit can be only positive integer, got %d")

// InvalidCursorError indicates caller gives a cursor that was not produced by a previous page
var InvalidCursorError = new(InvalidCursorErrorCode, "InvalidCursor", "Cursor %q is malformed")

// InvalidSortDirectionError indicates caller gives a sort direction other than ascending/descending
var InvalidSortDirectionError = new(InvalidSortDirectionErrorCode, "InvalidSortDirection", "Sort direction %v is invalid")

// ObjectIDNotFoundError indicates caller gives an item ID that does not exist
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Item with ID %s is not exist")

// DuplicatedObjectIDError indicates caller creates an item using an item ID that is already in used
var DuplicatedObjectIDError = new(DuplicatedObjectIDErrorCode, "DuplicatedObjectID", "Item ID %s is already used")

// MatchTypeInvalidError indicates caller gives invalid or unsupported match type when building a filter
var MatchTypeInvalidError = new(MatchTypeInvalidErrorCode, "MatchTypeInvalid", "Match type %d is invalid or unsupported")
