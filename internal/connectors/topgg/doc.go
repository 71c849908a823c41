// Package topgg implements a directory client for the top.gg GraphQL API.
//
// The client issues a single Entities query per call and returns the
// nodes of the paginated entities payload (data.entitiesV2.nodes) as
// opaque entity records.
//
// # Request
//
// One POST to the GraphQL endpoint with a JSON body holding the fixed
// Entities document, the listing input and the operation name. The
// listing input ranks servers by TOTAL_SIZE with every filter empty.
// No credentials are attached: no Authorization header, no cookie jar.
//
// # Failure Modes
//
// Every failure is returned as a *domain.FetchError:
//
//   - transport: the request never produced a response
//   - status: the response status was not 200
//   - decode: the body was not valid JSON
//   - missing_path: data.entitiesV2.nodes was absent or null
//
// There is no retry, pagination or rate limiting. No timeout is applied
// unless Config.Timeout is set.
package topgg
