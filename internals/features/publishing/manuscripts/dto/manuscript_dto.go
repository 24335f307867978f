// file: internals/features/publishing/manuscripts/dto/manuscript_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "terbitku_backend/internals/features/publishing/manuscripts/model"
)

/* =========================================================
   Patch types (tri-state)
   - Patch[T]         : not-set | set(value)
   - PatchNullable[T] : not-set | set(null) | set(value)
   ========================================================= */

type Patch[T any] struct {
	Set   bool
	Value T
}

func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	// kehadiran key di JSON berarti Set=true (walau zero value)
	p.Set = true
	return json.Unmarshal(b, &p.Value)
}

func (p Patch[T]) IsSet() bool { return p.Set }

type PatchNullable[T any] struct {
	Set   bool // key ada di payload?
	Valid bool // true => ada Value, false => null eksplisit
	Value T
}

func (p *PatchNullable[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Valid = false
		return nil
	}
	p.Valid = true
	return json.Unmarshal(b, &p.Value)
}

func (p PatchNullable[T]) IsSet() bool { return p.Set }

/* =========================================================
   Requests
   ========================================================= */

type CreateManuscriptRequest struct {
	ManuscriptTitle      string   `json:"manuscript_title" validate:"required,max=200"`
	ManuscriptAuthorName *string  `json:"manuscript_author_name" validate:"omitempty,max=120"`
	ManuscriptGenre      *string  `json:"manuscript_genre" validate:"omitempty,max=80"`
	ManuscriptKeywords   []string `json:"manuscript_keywords" validate:"omitempty,dive,max=80"`

	// payload marketing-kit dari generator AI, disimpan apa adanya
	ManuscriptMeta json.RawMessage `json:"manuscript_meta" validate:"omitempty"`
}

func (r *CreateManuscriptRequest) ToModel() *m.ManuscriptModel {
	man := &m.ManuscriptModel{
		ManuscriptTitle:      strings.TrimSpace(r.ManuscriptTitle),
		ManuscriptAuthorName: trimPtr(r.ManuscriptAuthorName),
		ManuscriptGenre:      trimPtr(r.ManuscriptGenre),
	}
	if len(r.ManuscriptKeywords) > 0 {
		man.ManuscriptKeywords = pq.StringArray(r.ManuscriptKeywords)
	}
	if len(r.ManuscriptMeta) > 0 {
		man.ManuscriptMeta = datatypes.JSON(r.ManuscriptMeta)
	}
	return man
}

type PatchManuscriptRequest struct {
	ManuscriptTitle      Patch[string]          `json:"manuscript_title"`
	ManuscriptAuthorName PatchNullable[string]  `json:"manuscript_author_name"`
	ManuscriptGenre      PatchNullable[string]  `json:"manuscript_genre"`
	ManuscriptKeywords   Patch[[]string]        `json:"manuscript_keywords"`
	ManuscriptMeta       Patch[json.RawMessage] `json:"manuscript_meta"`
	ManuscriptStatus     Patch[string]          `json:"manuscript_status"`
}

// Apply menuangkan field yang di-set ke map updates untuk GORM.
func (r *PatchManuscriptRequest) Apply() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.ManuscriptTitle.IsSet() {
		updates["manuscript_title"] = strings.TrimSpace(r.ManuscriptTitle.Value)
	}
	if r.ManuscriptAuthorName.IsSet() {
		if r.ManuscriptAuthorName.Valid {
			updates["manuscript_author_name"] = strings.TrimSpace(r.ManuscriptAuthorName.Value)
		} else {
			updates["manuscript_author_name"] = nil
		}
	}
	if r.ManuscriptGenre.IsSet() {
		if r.ManuscriptGenre.Valid {
			updates["manuscript_genre"] = strings.TrimSpace(r.ManuscriptGenre.Value)
		} else {
			updates["manuscript_genre"] = nil
		}
	}
	if r.ManuscriptKeywords.IsSet() {
		updates["manuscript_keywords"] = pq.StringArray(r.ManuscriptKeywords.Value)
	}
	if r.ManuscriptMeta.IsSet() {
		updates["manuscript_meta"] = datatypes.JSON(r.ManuscriptMeta.Value)
	}
	if r.ManuscriptStatus.IsSet() {
		updates["manuscript_status"] = strings.TrimSpace(r.ManuscriptStatus.Value)
	}
	return updates
}

/* =========================================================
   Responses
   ========================================================= */

type ManuscriptResponse struct {
	ManuscriptID         uuid.UUID       `json:"manuscript_id"`
	ManuscriptTitle      string          `json:"manuscript_title"`
	ManuscriptAuthorName *string         `json:"manuscript_author_name,omitempty"`
	ManuscriptGenre      *string         `json:"manuscript_genre,omitempty"`
	ManuscriptKeywords   []string        `json:"manuscript_keywords,omitempty"`
	ManuscriptMeta       json.RawMessage `json:"manuscript_meta,omitempty"`
	ManuscriptStatus     string          `json:"manuscript_status"`
	ManuscriptCreatedAt  time.Time       `json:"manuscript_created_at"`
	ManuscriptUpdatedAt  time.Time       `json:"manuscript_updated_at"`
}

func FromModel(man *m.ManuscriptModel) ManuscriptResponse {
	return ManuscriptResponse{
		ManuscriptID:         man.ManuscriptID,
		ManuscriptTitle:      man.ManuscriptTitle,
		ManuscriptAuthorName: man.ManuscriptAuthorName,
		ManuscriptGenre:      man.ManuscriptGenre,
		ManuscriptKeywords:   []string(man.ManuscriptKeywords),
		ManuscriptMeta:       json.RawMessage(man.ManuscriptMeta),
		ManuscriptStatus:     string(man.ManuscriptStatus),
		ManuscriptCreatedAt:  man.ManuscriptCreatedAt,
		ManuscriptUpdatedAt:  man.ManuscriptUpdatedAt,
	}
}

func FromModels(list []m.ManuscriptModel) []ManuscriptResponse {
	out := make([]ManuscriptResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
