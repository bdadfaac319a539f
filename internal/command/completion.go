// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for tblsort
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tblsort()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "sort view compare columns completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local input="--by --columns -c --filter -f --format --parent --sheet --sort -s --s3-endpoint --s3-profile --s3-region"
    local output="--color --count --output -o --padding --titles -t"

    case "$cmd" in
        sort)
            local opts="$input $output"
            ;;
        view)
            local opts="$input --height"
            ;;
        compare)
            local opts="--by --order"
            ;;
        columns)
            local opts="$output"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml csv" -- "$cur") )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "csv json yaml xlsx" -- "$cur") )
            return 0
            ;;
        --order)
            COMPREPLY=( $(compgen -W "asc desc" -- "$cur") )
            return 0
            ;;
        --by)
            if [[ "$cmd" == "compare" ]]; then
                COMPREPLY=( $(compgen -W "$(tblsort columns -o csv 2>/dev/null | tail -n +2 | cut -d, -f1)" -- "$cur") )
                return 0
            fi
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise, we're on the SOURCE positional, complete files
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _tblsort tblsort
`

const zshCompletionScript = `#compdef tblsort

_tblsort() {
  local -a cmds
  cmds=(
    'sort:sort a table and print it'
    'view:browse a table and re-sort it interactively'
    'compare:compare two cell values'
    'columns:list the sortable columns'
    'completion:generate shell completion script'
  )

  local -a input
  input=(
  '*--by[bind a column to a sort strategy]:binding'
  '(-c --columns)'{-c,--columns}'[columns to include]:columns'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '--format[input format]:format:(csv json yaml xlsx)'
  '--parent[path to the row array in JSON input]:path'
  '--sheet[spreadsheet tab]:sheet'
  '(-s --sort)'{-s,--sort}'[column to sort by]:column'
  '--s3-endpoint[S3 endpoint override]:url'
  '--s3-profile[AWS profile]:profile'
  '--s3-region[AWS region]:region'
  )

  local -a output
  output=(
  '--color[enable colored text]'
  '--count[show the row count]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml csv)'
  '--padding[spaces between columns]:padding'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tblsort commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    sort)
      _arguments -C $input $output '::SOURCE:_files'
      ;;
    view)
      _arguments -C $input '--height[visible rows]:height' ':SOURCE:_files'
      ;;
    compare)
      _arguments -C \
        '--by[SortBy column]:sort_by:($(tblsort columns -o csv 2>/dev/null | tail -n +2 | cut -d, -f1))' \
        '--order[sort order]:order:(asc desc)' \
        ':A:' ':B:'
      ;;
    columns)
      _arguments -C $output
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tblsort tblsort
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := cmd.Root().Writer
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: tblsort completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tblsort completion [bash|zsh]",
		Action:    completionCommandAction,
	}
}
