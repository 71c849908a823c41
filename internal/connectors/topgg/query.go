package topgg

import "github.com/custodia-labs/topgg-sampler/internal/core/domain"

// operationName is the GraphQL operation sent with every request.
const operationName = "Entities"

// entitiesQuery requests the listing fields shared by every entity
// plus the platform-specific fields of bots and servers.
const entitiesQuery = `query Entities($input: EntitiesListingParametersInput!) {
  entitiesV2(input: $input) {
    nodes {
      ...EntityItem
    }
  }
}

fragment MinimalEntity on Entity {
  __typename
  id: externalId
  internalId: id
  type
  platform
  name
  iconUrl
  shortDescription
}

fragment EntityItem on Entity {
  ...MinimalEntity
  icon
  votes
  nsfwLevel
  tags {
    slug
    displayName
  }
  socialCount
  createdAt
  reviewStatus
  reviewStats {
    averageScore
    reviewCount
    scoreDistribution {
      key
      value
    }
  }
  ... on DiscordBot {
    watcherMetadata {
      invitedAt
      invitedBy
    }
  }
  ... on DiscordServer {
    inviteCode
    serverTag {
      slug
      iconUrl
    }
  }
}`

// graphQLRequest is the POST body.
type graphQLRequest struct {
	Query         string    `json:"query"`
	Variables     variables `json:"variables"`
	OperationName string    `json:"operationName"`
}

// variables wraps the listing input.
type variables struct {
	Input domain.PoolQuery `json:"input"`
}

// graphQLResponse is the subset of the response the client reads.
// Pointers distinguish an absent or null path from an empty one.
type graphQLResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type responseData struct {
	EntitiesV2 *entitiesPayload `json:"entitiesV2"`
}

type entitiesPayload struct {
	Nodes []domain.Entity `json:"nodes"`
}

// graphQLError is one entry of the GraphQL errors array.
type graphQLError struct {
	Message string `json:"message"`
}

// newRequest builds the Entities request for the given pool size.
func newRequest(size int) graphQLRequest {
	return graphQLRequest{
		Query:         entitiesQuery,
		Variables:     variables{Input: domain.NewPoolQuery(size)},
		OperationName: operationName,
	}
}

// nodes extracts data.entitiesV2.nodes, reporting whether the path exists.
func (r *graphQLResponse) nodes() (domain.CandidatePool, bool) {
	if r.Data == nil || r.Data.EntitiesV2 == nil || r.Data.EntitiesV2.Nodes == nil {
		return nil, false
	}
	return domain.CandidatePool(r.Data.EntitiesV2.Nodes), true
}

// errorMessage returns the first GraphQL error message, if any.
func (r *graphQLResponse) errorMessage() string {
	for _, e := range r.Errors {
		if e.Message != "" {
			return e.Message
		}
	}
	return ""
}
