package driven

import (
	"context"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

// API is the signed request pipeline against the provider. It joins
// endpoints onto the fixed base URL, encodes the body, signs via the
// Signer, performs the POST, and normalizes the response by content type.
//
// Implementations never mutate credentials; token state is passed in per
// call and updated only by the flow controller.
type API interface {
	// Call issues a signed POST to the relative endpoint. With files it
	// builds a multipart body streaming each file from its path; without,
	// data is form-encoded. The parsed response is normalized to a single
	// mapping regardless of wire format.
	Call(ctx context.Context, endpoint string, data map[string]string, files map[string]string, token domain.TokenPair) (domain.Response, error)
}
