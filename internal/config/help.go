package config

import (
	"fmt"
	"io"
)

// Version is overridden at build time with -ldflags "-X ...config.Version=...".
var Version = "dev"

const usageLine = `usage: rtree [-adfiqNQFpugshDvtcUrCn] [-L level] [-P pattern] [-I pattern]
       [-o filename] [--dirsfirst] [--noreport] [--ignore-case] [--gitignore]
       [--si] [--inodes] [--device] [--charset X] [--verbose] [--help]
       [--version] [--] [<directory>]`

const helpText = `  ------- Listing options -------
  -a            All files are listed.
  -d            List directories only.
  -f            Print the full path prefix for each file.
  -L level      Descend only level directories deep.
  -P pattern    List only those files whose name contains pattern.
  -I pattern    Do not list files whose name contains pattern.
  --ignore-case Ignore case when pattern matching.
  --gitignore   Filter by using .gitignore files.
  --noreport    Turn off file/directory count at end of tree listing.
  --charset X   Use charset X (utf-8 or ascii) for indentation lines.
  -o filename   Output to file instead of stdout.
  ------- File options -------
  -q            Print non-printable characters as '?'.
  -N            Print non-printable characters as is.
  -Q            Quote filenames with double quotes.
  -p            Print the protections for each file.
  -u            Displays file owner or UID number.
  -g            Displays file group owner or GID number.
  -s            Print the size in bytes of each file.
  -h            Print the size in a more human readable way.
  --si          Like -h, but use in SI units (powers of 1000).
  -D            Print the date of last modification or (-c) status change.
  -F            Appends '/', '=', '*' or '|' as per ls -F.
  --inodes      Print inode number of each file.
  --device      Print device ID number to which each file belongs.
  ------- Sorting options -------
  -v            Sort files alphanumerically (default).
  -t            Sort files by last modification time.
  -c            Sort files by last status change time.
  -U            Leave files unsorted.
  -r            Reverse the order of the sort.
  --dirsfirst   List directories before files (-U disables).
  ------- Graphics options -------
  -i            Don't print indentation lines.
  -n            Turn colorization off always (-C overrides).
  -C            Turn colorization on always.
  ------- Miscellaneous options -------
  --verbose     Log directories that could not be read to stderr.
  --version     Print version and exit.
  --help        Print usage and this help message and exit.
  --            Options processing terminator.
`

// PrintUsage writes the one-paragraph synopsis.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
}

// PrintHelp writes the synopsis followed by every option.
func PrintHelp(w io.Writer) {
	PrintUsage(w)
	fmt.Fprint(w, helpText)
}

// PrintVersion writes the program version.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "rtree %s\n", Version)
}
