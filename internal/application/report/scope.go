package report

// ScopeKind identifica el nivel del reporte de presupuesto.
type ScopeKind int

const (
	// ScopeAll cubre todas las entidades presupuestadas.
	ScopeAll ScopeKind = iota
	// ScopePosition cubre un único puesto.
	ScopePosition
	// ScopeProject cubre un proyecto y sus puestos.
	ScopeProject
	// ScopeClient cubre un cliente y sus puestos.
	ScopeClient
)

// Scope es el alcance resuelto de un reporte: el nivel y, salvo en ScopeAll,
// el id de la entidad.
type Scope struct {
	Kind ScopeKind
	ID   string
}

// ResolveScope decide el alcance a partir de los filtros del request.
// Si llegan varios ids la precedencia es puesto, luego proyecto, luego
// cliente; sin ids el alcance es global.
func ResolveScope(positionID, projectID, clientID string) Scope {
	switch {
	case positionID != "":
		return Scope{Kind: ScopePosition, ID: positionID}
	case projectID != "":
		return Scope{Kind: ScopeProject, ID: projectID}
	case clientID != "":
		return Scope{Kind: ScopeClient, ID: clientID}
	default:
		return Scope{Kind: ScopeAll}
	}
}
