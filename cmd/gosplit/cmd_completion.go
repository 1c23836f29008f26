package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gosplit completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  gosplit completion bash > /usr/local/etc/bash_completion.d/gosplit\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  gosplit completion zsh > \"${fpath[1]}/_gosplit\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  gosplit completion fish > ~/.config/fish/completions/gosplit.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func generateBashCompletion() string {
	return `# bash completion for gosplit                            -*- shell-script -*-

_gosplit() {
    local cur prev words cword
    _init_completion || return

    local commands="history reset validate themes completion version help"

    # Flags per subcommand
    local tui_flags="--config --axis --position --theme --version"
    local history_flags="--config --limit --search --json --color"
    local reset_flags="--config"

    local axes="horizontal vertical"
    local shells="bash zsh fish"

    # Complete flag values
    case "${prev}" in
        --config)
            _filedir yaml
            return
            ;;
        --axis)
            COMPREPLY=($(compgen -W "${axes}" -- "${cur}"))
            return
            ;;
        --position|--theme|--limit|--search)
            # These take user-provided values, no completion
            return
            ;;
    esac

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
            _filedir
        fi
        return
    fi

    local command="${words[1]}"

    # Complete flags for each subcommand
    case "${command}" in
        history)
            COMPREPLY=($(compgen -W "${history_flags}" -- "${cur}"))
            ;;
        reset)
            COMPREPLY=($(compgen -W "${reset_flags}" -- "${cur}"))
            ;;
        validate)
            _filedir yaml
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        *)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
            else
                _filedir
            fi
            ;;
    esac
}

complete -F _gosplit gosplit
`
}

func generateZshCompletion() string {
	return `#compdef gosplit

# zsh completion for gosplit

_gosplit() {
    local -a commands
    commands=(
        'history:List recorded splitter placements'
        'reset:Forget all recorded placements'
        'validate:Validate config YAML files'
        'themes:List available themes'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--config[Path to a config.yaml file]:config file:_files -g "*.yaml"' \
        '--axis[Split axis]:axis:(horizontal vertical)' \
        '--position[Initial divider position]:position:' \
        '--theme[Theme name]:theme:' \
        '--version[Print version and exit]' \
        '1:command or file:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'gosplit commands' commands
            _files
            ;;
        args)
            case $words[1] in
                history)
                    _arguments \
                        '--config[Path to a config.yaml file]:config file:_files -g "*.yaml"' \
                        '--limit[Maximum number of placements to show]:limit:' \
                        '--search[Filter by layout key]:text:' \
                        '--json[Print placements as JSON]' \
                        '--color[Colorize JSON output]'
                    ;;
                reset)
                    _arguments \
                        '--config[Path to a config.yaml file]:config file:_files -g "*.yaml"'
                    ;;
                validate)
                    _arguments \
                        '*:config file:_files -g "*.yaml"'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_gosplit "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for gosplit

# Subcommands
complete -c gosplit -n '__fish_use_subcommand' -a history -d 'List recorded splitter placements'
complete -c gosplit -n '__fish_use_subcommand' -a reset -d 'Forget all recorded placements'
complete -c gosplit -n '__fish_use_subcommand' -a validate -d 'Validate config YAML files'
complete -c gosplit -n '__fish_use_subcommand' -a themes -d 'List available themes'
complete -c gosplit -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c gosplit -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c gosplit -n '__fish_use_subcommand' -a help -d 'Show help message'

# TUI flags
complete -c gosplit -n '__fish_use_subcommand' -l config -d 'Path to a config.yaml file' -rF
complete -c gosplit -n '__fish_use_subcommand' -l axis -d 'Split axis' -ra 'horizontal vertical'
complete -c gosplit -n '__fish_use_subcommand' -l position -d 'Initial divider position' -r
complete -c gosplit -n '__fish_use_subcommand' -l theme -d 'Theme name' -r
complete -c gosplit -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# history flags
complete -c gosplit -n '__fish_seen_subcommand_from history' -l config -d 'Path to a config.yaml file' -rF
complete -c gosplit -n '__fish_seen_subcommand_from history' -l limit -d 'Maximum number of placements to show' -r
complete -c gosplit -n '__fish_seen_subcommand_from history' -l search -d 'Filter by layout key' -r
complete -c gosplit -n '__fish_seen_subcommand_from history' -l json -d 'Print placements as JSON'
complete -c gosplit -n '__fish_seen_subcommand_from history' -l color -d 'Colorize JSON output'

# reset flags
complete -c gosplit -n '__fish_seen_subcommand_from reset' -l config -d 'Path to a config.yaml file' -rF

# validate - file completion
complete -c gosplit -n '__fish_seen_subcommand_from validate' -F

# completion - shell names
complete -c gosplit -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish' -d 'Shell type'
`
}
