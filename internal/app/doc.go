// Package app provides the main application logic for grabbing files from
// Yandex Disk public resources. It wires the API client, the download
// service, and the web interface together for the CLI commands.
package app
