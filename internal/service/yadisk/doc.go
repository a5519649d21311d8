// Package yadisk orchestrates listing and downloading of Yandex Disk
// public resources: it resolves signed URLs through the API client,
// saves files sequentially, and keeps session statistics.
package yadisk
