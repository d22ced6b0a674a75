package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
)

// Operation names used in logs
const (
	OpItemValue     = "Item value"
	OpItemBreakdown = "Item breakdown"
	OpQuestValue    = "Quest value"
	OpRankQuests    = "Rank quests"
	OpHunt          = "Hunt"
)

// Route parameter and query names
const (
	PathParamItemName  = "name"
	QueryParamArea     = "area"
	QueryParamStrategy = "strategy"
	QueryParamEpisode  = "episode"
)
