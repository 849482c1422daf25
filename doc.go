// Package main provides the fq command-line interface.
//
// fq is an interactive terminal file explorer. It walks a real
// filesystem, caches every discovered entry for the life of the
// session, and renders directory listings, text files with syntax
// highlighting, hex dumps and symlink targets as bordered tables sized
// to the live terminal. Commands are read one line at a time from
// stdin, so the session history stays in the terminal scrollback.
package main
