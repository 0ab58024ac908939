// Package extractor turns report chunks into structured match events by way
// of the DeepSeek chat API. Each chunk is sent with the extraction prompt,
// the JSON reply is decoded and validated, and the whole exchange is retried
// with bounded backoff because both transport failures and malformed model
// output are usually transient.
package extractor
