package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newActivateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Print the shell wrapper that lets rn change your cwd",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), wrapperScript)
			return nil
		},
	}
	return cmd
}

const wrapperScript = `# rn shell integration
rn() {
  local _rn_tmp
  _rn_tmp="$(mktemp "${TMPDIR:-/tmp}/rn.XXXXXX")" || return 1
  RN_WRAPPER_ACTIVE=1 RN_INSTRUCTION_FILE="$_rn_tmp" command rn "$@"
  local _rn_status=$?
  if [ -f "$_rn_tmp" ]; then
    local _rn_target
    _rn_target="$(cat "$_rn_tmp")"
    rm -f "$_rn_tmp"
    if [ $_rn_status -eq 0 ] && [ -n "$_rn_target" ]; then
      builtin cd "$_rn_target"
    fi
  fi
  return $_rn_status
}
`
