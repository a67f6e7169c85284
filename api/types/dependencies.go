package types

import (
	"github.com/trajlab/annotator-api/internal/database"
	"github.com/trajlab/annotator-api/internal/services/annotations"
	"github.com/trajlab/annotator-api/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	AnnotationService annotations.Service
	Catalog           videos.Catalog
}
