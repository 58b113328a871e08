package constants

const (
	APP_NAME   = "Z3Z Blog"
	PUBLIC_URL = "https://z3z.blog"

	// Excerpts shown on listing cards are cut at this many characters.
	EXCERPT_LENGTH = 150

	// Comment field minimums, matching the public form validation.
	MIN_COMMENT_NAME_LENGTH = 2
	MIN_COMMENT_BODY_LENGTH = 5

	// Lines shorter than this that don't end a sentence get joined onto
	// the previous paragraph when no blank-line separators exist.
	SHORT_LINE_THRESHOLD = 100
)
