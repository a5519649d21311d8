// Package yadisk provides a client for the Yandex Disk public resources API.
// It builds filtered listing requests, normalizes listing responses,
// and resolves short-lived signed URLs for downloading individual files.
package yadisk
