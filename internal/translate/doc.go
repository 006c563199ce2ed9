// Package translate provides translation providers for product content.
// The DeepL provider is the default; OpenAI and Gemini chat-based providers
// can be selected instead. All providers implement the Provider interface
// and translate one text per call, with the target language chosen per call.
package translate
