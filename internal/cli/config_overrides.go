package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeyPrefix prefixes cobra annotations that bind a local flag to a
// config key, e.g. "flag:output" -> "render.output".
const flagKeyPrefix = "flag:"

// applyFlagOverrides copies explicitly set, annotated flags into v. Flags
// left at their default do not shadow file or env values.
func applyFlagOverrides(cmd *cobra.Command, v *viper.Viper) {
	for ann, key := range cmd.Annotations {
		name, ok := strings.CutPrefix(ann, flagKeyPrefix)
		if !ok {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() == "bool" {
			val, _ := cmd.Flags().GetBool(name)
			v.Set(key, val)
			continue
		}
		v.Set(key, f.Value.String())
	}
}
