package display

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/wxtgen/errors"
)

// ShouldOutputJSON determines if a command should print machine-readable results.
// An explicit --json flag wins; otherwise WXTGEN_JSON decides.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd != nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			on, _ := cmd.Flags().GetBool("json")
			return on
		}
	}
	return envJSON()
}

func envJSON() bool {
	on, err := strconv.ParseBool(os.Getenv("WXTGEN_JSON"))
	return err == nil && on
}

// OutputJSON marshals v with MarshalJSON and prints it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	fmt.Fprintln(w, string(data))
	return nil
}
