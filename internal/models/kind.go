package models

import "fmt"

// Kind represents the delivery archetype of a project
type Kind string

const (
	KindWebApp        Kind = "web_app"       // Frontend + backend
	KindAPIOnly       Kind = "api_only"      // Backend/API only
	KindDataPipeline  Kind = "data_pipeline" // ETL/data engineering
	KindMLProject     Kind = "ml_project"    // Data science/ML
	KindMobileApp     Kind = "mobile_app"    // Mobile app
	KindFullstack     Kind = "fullstack"     // Complete web system
	KindMicroservices Kind = "microservices" // Distributed architecture
)

// AllKinds lists every project kind.
var AllKinds = []Kind{
	KindWebApp,
	KindAPIOnly,
	KindDataPipeline,
	KindMLProject,
	KindMobileApp,
	KindFullstack,
	KindMicroservices,
}

// ParseKind converts a string tag into a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown project kind: %q", s)
}
