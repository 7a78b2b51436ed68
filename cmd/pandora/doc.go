// Command pandora is an interactive video downloader front end: it
// fetches format metadata through yt-dlp, classifies and ranks the
// available formats, and downloads the user's pick.
package main
