// Package cli implements the command-line interface for the cookbook tool.
//
// # Overview
//
// The cookbook CLI parses flat-text recipe documents, builds shopping lists for
// selected dishes and merges text files. All results are emitted as
// structured documents (YAML by default) carrying a kind, apiVersion and
// metadata header.
//
// # Commands
//
// shop - Build a shopping list:
//
//	cookbook shop --recipes recipes.txt --dish Omelette --dish Toast --servings 2
//
// Multiplies each ingredient of every requested dish by the number of
// servings and sums them per ingredient name. Dishes can also come from a menu
// file (--menu menu.yaml) or positional arguments.
//
// recipes - List parsed recipes:
//
//	cookbook recipes --recipes recipes.txt [--dish Omelette]
//
// merge - Merge text files, shortest first:
//
//	cookbook merge [--result result.txt] [--skip-comments] 1.txt 2.txt 3.txt
//
// # Common Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--max-size     Largest input file accepted, in bytes (default: 1MB)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL           Set logging verbosity (debug, info, warn, error)
//	COOKBOOK_RECIPES    Default recipe document path
//	COOKBOOK_DISHES     Comma separated dishes for shop
//	COOKBOOK_SERVINGS   Servings for shop
//	COOKBOOK_MENU       Menu file for shop
//	COOKBOOK_OUTPUT     Output file path
//	COOKBOOK_FORMAT     Output format
//	COOKBOOK_MAX_SIZE   Largest input file in bytes
//	COOKBOOK_MERGE_RESULT        Merged file path
//	COOKBOOK_MERGE_SKIP_COMMENTS Drop "#" lines from merge inputs
//
// # Exit Codes
//
//	0  Success
//	1  General error (missing files, parse errors, I/O failures)
//	2  Context canceled or timeout
//	3  Invalid arguments (bad flags, non-positive servings, oversized input)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cookbook/pkg/cli.version=1.0.0'"
package cli
