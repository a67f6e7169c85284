package types

import "github.com/trajlab/annotator-api/internal/services/annotations"

// SaveAnnotationRequest is the POST /save body: one user's full labeling
// pass over one video
type SaveAnnotationRequest struct {
	Username    string                     `json:"username"`
	Video       string                     `json:"video"`
	Annotations []annotations.SubtaskInput `json:"annotations"`
}
