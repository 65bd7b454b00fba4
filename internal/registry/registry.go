package registry

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"forj/internal/models"
)

// Scaffolder materializes the on-disk tree for new projects and rediscovers
// trees already present under the base path.
type Scaffolder interface {
	Create(id, name string, kind models.Kind, description string) (string, error)
	ListExisting() ([]models.ProjectState, error)
}

// GitPreparer initializes version control inside a project tree
type GitPreparer interface {
	Prepare(root string) error
}

// Packager archives a project tree for delivery
type Packager interface {
	Package(root, destDir, baseName, format string) (string, error)
}

// TransitionPolicy decides whether a status transition is allowed.
// The default policy is permissive; stricter deployments can reject
// transitions such as delivered -> initiated.
type TransitionPolicy func(from, to models.Status) error

// AllowAny permits every transition. The old and new values are still
// recorded in the activity log.
func AllowAny(from, to models.Status) error {
	return nil
}

// StrictOrder rejects transitions out of terminal states and backwards
// moves in the lifecycle order. Cancelling is allowed from any
// non-terminal state.
func StrictOrder(from, to models.Status) error {
	if from.Terminal() {
		return fmt.Errorf("status %s is terminal", from)
	}
	if to == models.StatusCancelled {
		return nil
	}
	if statusRank(to) < statusRank(from) {
		return fmt.Errorf("cannot move status backwards from %s to %s", from, to)
	}
	return nil
}

func statusRank(s models.Status) int {
	for i, st := range models.AllStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Registry is the lifecycle authority for projects: the sole mutator of
// project records. Every mutation is persisted before returning.
type Registry struct {
	scaffolder Scaffolder
	store      *Store
	now        func() time.Time
	policy     TransitionPolicy
	git        GitPreparer
	packager   Packager
}

// Option configures a Registry
type Option func(*Registry)

// WithClock injects the clock used for ids, timestamps, and activities
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithTransitionPolicy replaces the default permissive status policy
func WithTransitionPolicy(policy TransitionPolicy) Option {
	return func(r *Registry) { r.policy = policy }
}

// WithGitPreparer wires the collaborator used by PrepareForGitHub
func WithGitPreparer(git GitPreparer) Option {
	return func(r *Registry) { r.git = git }
}

// WithPackager wires the collaborator used by Package
func WithPackager(packager Packager) Option {
	return func(r *Registry) { r.packager = packager }
}

// New loads the index under basePath, reconciles it against the project
// trees the scaffolder reports, and persists the result if reconciliation
// added anything.
func New(basePath string, scaffolder Scaffolder, opts ...Option) (*Registry, error) {
	r := &Registry{
		scaffolder: scaffolder,
		store:      NewStore(basePath),
		now:        time.Now,
		policy:     AllowAny,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.store.Load(); err != nil {
		return nil, err
	}

	discovered, err := scaffolder.ListExisting()
	if err != nil {
		return nil, fmt.Errorf("scanning for existing projects: %w", err)
	}
	if added := r.store.Reconcile(discovered); added > 0 {
		if err := r.store.Save(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// CreateProject scaffolds the on-disk tree for a new project and registers
// it with status initiated and a seed activity. Scaffolding failures are
// surfaced as models.ErrScaffold, not retried.
func (r *Registry) CreateProject(name, description string, kind models.Kind) (*models.Project, error) {
	now := r.now()
	id, err := newProjectID(now)
	if err != nil {
		return nil, err
	}

	root, err := r.scaffolder.Create(id, name, kind, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrScaffold, err)
	}

	p := &models.Project{
		ID:          id,
		Name:        name,
		Description: description,
		Kind:        kind,
		Status:      models.StatusInitiated,
		CreatedAt:   now,
		UpdatedAt:   now,
		Path:        root,
		Teams:       []string{},
		Activities: []models.Activity{{
			Timestamp: now,
			Action:    "project_created",
			Details:   fmt.Sprintf("Project %q created with kind %s", name, kind),
		}},
	}

	r.store.Put(p)
	if err := r.store.Save(); err != nil {
		return nil, err
	}

	return p.Clone(), nil
}

// Get returns a copy of the project record, or models.ErrProjectNotFound
func (r *Registry) Get(id string) (*models.Project, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	return p.Clone(), nil
}

// UpdateStatus moves a project to newStatus, recording the old and new
// values in a status_change activity.
func (r *Registry) UpdateStatus(id string, newStatus models.Status, details string) error {
	p, ok := r.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	old := p.Status
	if err := r.policy(old, newStatus); err != nil {
		return fmt.Errorf("status transition rejected: %w", err)
	}

	now := r.now()
	p.Status = newStatus
	p.UpdatedAt = now

	msg := fmt.Sprintf("Status changed from %s to %s", old, newStatus)
	if details != "" {
		msg += ": " + details
	}
	p.Activities = append(p.Activities, models.Activity{
		Timestamp: now,
		Action:    "status_change",
		Details:   msg,
	})

	return r.store.Save()
}

// AddActivity appends an entry to the project's audit trail. A non-empty
// team joins Teams with set-union semantics.
func (r *Registry) AddActivity(id, action, team, details string) error {
	p, ok := r.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	now := r.now()
	p.UpdatedAt = now
	p.Activities = append(p.Activities, models.Activity{
		Timestamp: now,
		Action:    action,
		Team:      team,
		Details:   details,
	})

	if team != "" && !p.HasTeam(team) {
		p.Teams = append(p.Teams, team)
	}

	return r.store.Save()
}

// LinkGitHub records the project's GitHub repository URL
func (r *Registry) LinkGitHub(id, url string) error {
	p, ok := r.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	now := r.now()
	p.GitHubURL = url
	p.UpdatedAt = now
	p.Activities = append(p.Activities, models.Activity{
		Timestamp: now,
		Action:    "github_linked",
		Details:   "Project linked to GitHub: " + url,
	})

	return r.store.Save()
}

// PrepareForGitHub initializes version control in the project tree and
// records the preparation. Returns the project path.
func (r *Registry) PrepareForGitHub(id string) (string, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	if r.git == nil {
		return "", fmt.Errorf("no git preparer configured")
	}

	if err := r.git.Prepare(p.Path); err != nil {
		return "", fmt.Errorf("preparing %s for github: %w", id, err)
	}

	if err := r.AddActivity(id, "github_prepared", "", "Repository initialized with an initial commit"); err != nil {
		return "", err
	}
	return p.Path, nil
}

// Package archives the project tree for delivery in the given format
// ("zip" or "tar.gz") and records the packaging. Returns the archive path.
func (r *Registry) Package(id, format string) (string, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	if r.packager == nil {
		return "", fmt.Errorf("no packager configured")
	}

	baseName := fmt.Sprintf("%s_%s", p.ID, r.now().Format("20060102_150405"))
	archivePath, err := r.packager.Package(p.Path, r.store.BasePath, baseName, format)
	if err != nil {
		return "", fmt.Errorf("packaging %s: %w", id, err)
	}

	if err := r.AddActivity(id, "packaged", "", "Project packaged for delivery: "+archivePath); err != nil {
		return "", err
	}
	return archivePath, nil
}

// List returns project summaries, optionally filtered to one status,
// ordered most recently created first.
func (r *Registry) List(filter *models.Status) []models.ProjectSummary {
	var summaries []models.ProjectSummary
	for _, p := range r.store.All() {
		if filter != nil && p.Status != *filter {
			continue
		}
		summaries = append(summaries, p.Summarize())
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries
}

// Summary returns total and per-status counts. The histogram covers every
// status, zero-filled.
func (r *Registry) Summary() models.Summary {
	byStatus := make(map[models.Status]int, len(models.AllStatuses))
	for _, st := range models.AllStatuses {
		byStatus[st] = 0
	}
	for _, p := range r.store.All() {
		byStatus[p.Status]++
	}

	return models.Summary{
		Total:    r.store.Len(),
		ByStatus: byStatus,
		Active: byStatus[models.StatusAnalyzing] +
			byStatus[models.StatusPlanning] +
			byStatus[models.StatusInProgress] +
			byStatus[models.StatusReview],
		Completed: byStatus[models.StatusCompleted] +
			byStatus[models.StatusDelivered],
	}
}

// Details returns the full record plus a live listing of the files under
// the project root. The listing is a read-time scan, never cached.
func (r *Registry) Details(id string) (*models.Details, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}

	files, err := models.ListFiles(p.Path)
	if err != nil {
		return nil, fmt.Errorf("listing files for %s: %w", id, err)
	}

	return &models.Details{
		Project:    *p.Clone(),
		Files:      files,
		FilesCount: len(files),
	}, nil
}

// newProjectID returns "proj_<yyyymmdd_hhmmss>_<rand4hex>". The random
// suffix keeps ids unique when projects are created within the same second.
func newProjectID(now time.Time) (string, error) {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating project id: %w", err)
	}
	return fmt.Sprintf("proj_%s_%s", now.Format("20060102_150405"), hex.EncodeToString(b)), nil
}
