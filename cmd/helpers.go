package cmd

import (
	"bufio"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/parser"
	"github.com/manav03panchal/fastpilot/internal/validate"
)

// promptConfirmation prompts the user for a yes/no confirmation.
func promptConfirmation(cmd *cobra.Command, prompt string) (bool, error) {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		// Empty input (just Enter or EOF) means no
		return false, nil
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

// confirm asks before a destructive action unless skip is set. JSON output
// never prompts, so it requires skip.
func confirm(cmd *cobra.Command, skip bool, prompt string) (bool, error) {
	if skip {
		return true, nil
	}
	if ctx.IsJSON() {
		return false, errors.NewUserError(
			"confirmation required",
			"Pass --yes to confirm when using JSON output.")
	}
	return promptConfirmation(cmd, prompt)
}

// parseTime parses a user-supplied timestamp relative to now.
func parseTime(input string, now time.Time) (time.Time, error) {
	t, err := parser.ParseTimestamp(input, now)
	if err != nil {
		return time.Time{}, parser.AsUserError(err)
	}
	return t, nil
}

// parsePastTime parses a timestamp that may not lie in the future.
func parsePastTime(field, input string, now time.Time) (time.Time, error) {
	t, err := parseTime(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(now) {
		ue := errors.NewUserErrorWithField(field, input,
			field+" time cannot be in the future",
			"Use a time in the past, like '2 hours ago' or 'today 8am'.")
		ue.Err = errors.ErrInvalidTimestamp
		return time.Time{}, ue
	}
	return t, nil
}

// cleanNote sanitizes and validates a note.
func cleanNote(note string) (string, error) {
	note = validate.SanitizeNote(note)
	if err := validate.Note(note); err != nil {
		return "", err
	}
	return note, nil
}

// checkMethod rejects unknown method ids given on the command line.
func checkMethod(id string) error {
	if id == "" {
		return nil
	}
	return validate.MethodID(ctx.Catalog, id)
}

// resolveFastID expands an id fragment into a record id.
func resolveFastID(ref string) (string, error) {
	if err := validate.FastID(ref); err != nil {
		return "", err
	}
	return ctx.Tracker.ResolveID(ref)
}
