package drive

import (
	"regexp"
	"strings"
)

var entryNamePattern = regexp.MustCompile(`^[\w\-. ]+$`)

// ValidatePath checks superficial well-formedness of a remote path. Deeper
// constraints are left to the provider.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return NewError(KindInvalidInput, "path is required")
	}
	return nil
}

// ValidateEntryName checks a rename/create target name. Dropbox's own naming
// rules are broader than this; anything that slips through is rejected by
// the provider and classified at the boundary.
func ValidateEntryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewError(KindInvalidInput, "name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return NewError(KindInvalidInput, "name %q must not contain path separators", name)
	}
	if trimmed == "." || trimmed == ".." {
		return NewError(KindInvalidInput, "name %q is reserved", name)
	}
	if !entryNamePattern.MatchString(name) {
		return NewError(KindInvalidInput,
			"name %q may only contain letters, digits, dashes, underscores, dots and spaces", name)
	}
	return nil
}

// ValidateWriteMode checks an upload write mode.
func ValidateWriteMode(mode string) error {
	switch mode {
	case "", "add", "overwrite":
		return nil
	default:
		return NewError(KindInvalidInput, "write mode %q must be either 'add' or 'overwrite'", mode)
	}
}

// ValidateRevisionsMode checks a revision listing mode.
func ValidateRevisionsMode(mode string) error {
	switch mode {
	case "", "path", "id":
		return nil
	default:
		return NewError(KindInvalidInput, "revisions mode %q must be either 'path' or 'id'", mode)
	}
}
