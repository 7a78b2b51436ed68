// Package ytdlp wraps the yt-dlp command line tool: metadata extraction
// through its JSON dump and downloads driven by format-selector
// expressions. Command execution sits behind an Executor so tests can run
// without the binary.
package ytdlp
