package errx

import (
	"fmt"
	"net/http"
)

// WrapProvider wraps a media provider failure. Provider errors are transient
// and absorbed by the resolver after bounded retries.
func WrapProvider(provider string, err error) *AppError {
	if err == nil {
		return nil
	}
	return New(fmt.Errorf("%s: %w", provider, err), http.StatusBadGateway, ProviderErrorMessage)
}

// WrapFlowBackend wraps a flow execution backend failure. The executor turns
// these into a degraded response rather than propagating them.
func WrapFlowBackend(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, FlowBackendErrorMessage)
}

// WrapGeneration wraps a text generation backend failure. The fallback chain
// turns these into a canned reply rather than propagating them.
func WrapGeneration(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, GenerationErrorMessage)
}

// WrapSpeech wraps a speech synthesis failure. Audio is an optional
// enrichment, so callers drop it on error and carry on.
func WrapSpeech(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, SpeechErrorMessage)
}

// UnknownIntent reports an intent missing from the flow slot schema.
func UnknownIntent(intent string) *AppError {
	return New(fmt.Errorf("%w: %q", ErrUnknownIntent, intent), http.StatusInternalServerError, SystemErrorMessage)
}
