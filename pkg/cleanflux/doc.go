// Package cleanflux provides the Go client for the CleanFlux text-cleaning
// and content-moderation API.
//
// Create a client with an API key, then call one method per remote
// capability:
//
//	client, err := cleanflux.New(os.Getenv("CLEANFLUX_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Clean(ctx, cleanflux.Payload{
//		"text": "<p>Hello   world</p>",
//	})
//
// Payloads and results are opaque JSON objects; the client sends the payload
// exactly as given and returns the parsed response body verbatim. The remote
// service owns all validation and processing.
//
// Non-2xx responses are returned as *APIError, which carries the HTTP status
// code and the parsed response body so callers can distinguish, say, a 401
// from a 429. Transport failures propagate wrapped but unclassified.
//
// The client performs no retries, batching, or caching; each call is a single
// request. A Client is immutable after construction and safe for concurrent
// use. Use the context to cancel or bound individual calls, and WithTimeout
// to bound all of them.
package cleanflux
