// Command kampdata ingests Danish handball match reports, extracts their
// event tables through the DeepSeek API, and maintains the resulting match
// database.
package main
