package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render the docs directory to HTML with Swagger UI viewers")
	fmt.Fprintln(w, "  render     Rewrite swagger markers of one Markdown file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdswagger help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every Markdown page of docs_dir into site_dir and copy the")
	fmt.Fprintln(w, "referenced swagger files next to the pages that embed them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: mdswagger.yml if present)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel pages (0 = auto)")
	fmt.Fprintln(w, "      --strict              Fail when a swagger marker cannot be resolved")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page details")
	printMarkerHelp(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger render <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the Markdown of one page with swagger markers replaced.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Write Markdown to file instead of stdout")
	fmt.Fprintln(w, "      --dest <dir>          Directory the page is published to")
	fmt.Fprintln(w, "      --allow-arbitrary-locations")
	fmt.Fprintln(w, "                            Allow swagger files outside the page directory")
	fmt.Fprintln(w, "      --strict              Fail when a swagger marker cannot be resolved")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show registered files")
	printMarkerHelp(w)
}

func printMarkerHelp(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, "  !!swagger <file>!!        Swagger/OpenAPI file next to the page")
	fmt.Fprintln(w, "  !!swagger-http <url>!!    Remote http(s) specification")
}
