// Package server exposes the web interface: a small Echo application for
// browsing a public Yandex Disk resource and downloading selected files
// to the server's output directory.
package server
