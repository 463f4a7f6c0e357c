package commands

import (
	"context"
	"fmt"
	"sort"

	validation "github.com/jellydator/validation"

	"github.com/i3hub-official/fieldshield/internal/password"
)

// RunCheckPassword checks a candidate password against the strength policy
// and prints every violated rule, not just the first.
func RunCheckPassword(_ context.Context, io IOTuple, candidate string) error {
	err := password.DefaultPolicy().Check(candidate)
	if err == nil {
		fmt.Fprintln(io.Writer, "ok: password meets the strength policy")
		return nil
	}

	violations, ok := err.(validation.Errors)
	if !ok {
		return err
	}

	rules := make([]string, 0, len(violations))
	for rule := range violations {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	fmt.Fprintf(io.Writer, "rejected: %d rule(s) violated\n", len(rules))
	for _, rule := range rules {
		fmt.Fprintf(io.Writer, "  - %s: %v\n", rule, violations[rule])
	}
	return nil
}
