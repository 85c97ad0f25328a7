// Package openai implements the ai.Embedder interface against any
// OpenAI-compatible embeddings endpoint (OpenAI itself, Ollama, LocalAI,
// vLLM). Credentials and endpoints come exclusively from ai.Config; nothing
// is compiled in.
package openai
