package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/adaptivekitchen/studio-site/blog/domain"
)

const (
	// collectionKey is the single fixed key the dynamic collection lives
	// under in every keyed backend.
	collectionKey = "blog_posts"

	collectionSchemaVersion = 1
)

// collectionEnvelope is the serialized representation shared by the file and
// redis backends. The schema version allows the on-disk format to evolve; the
// revision backs the optimistic check in SaveAll.
type collectionEnvelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Revision      domain.Revision `json:"revision"`
	Posts         []domain.Post   `json:"posts"`
}

func encodeCollection(posts []domain.Post, rev domain.Revision) ([]byte, error) {
	if posts == nil {
		posts = []domain.Post{}
	}
	data, err := json.Marshal(collectionEnvelope{
		SchemaVersion: collectionSchemaVersion,
		Revision:      rev,
		Posts:         posts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// decodeCollection parses a stored collection. Data written before the
// envelope was introduced is a bare JSON array of posts; that form is still
// accepted and treated as revision 0.
func decodeCollection(data []byte) (collectionEnvelope, error) {
	var env collectionEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.SchemaVersion > 0 {
		return env, nil
	}

	var legacy []domain.Post
	if err := json.Unmarshal(data, &legacy); err != nil {
		return collectionEnvelope{}, fmt.Errorf("failed to decode collection: %w", err)
	}
	return collectionEnvelope{SchemaVersion: collectionSchemaVersion, Posts: legacy}, nil
}
