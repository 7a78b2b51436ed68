// Package session drives the interactive download loop: prompt for a
// URL, fetch metadata, present the ranked option menu, and run the
// chosen download. Terminal IO sits behind Prompter and Renderer so the
// loop can be scripted in tests.
package session
