package constvars

// CustomValidationErrorMessages maps validator tags to client-facing fragments.
// The field name is prepended by the formatter.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"oneof":        "must be one of: %s",
	"gtfield":      "must be after %s",
	"object_id":    "must be a valid identifier",
	"rating_scale": "must be between 1.0 and 5.0 in half-point steps",
}

// TagsWithParams marks the tags whose message contains a parameter placeholder.
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"gtfield": true,
}
