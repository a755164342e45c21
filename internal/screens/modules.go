package screens

import "github.com/nfrund/lessonhub/internal/domain"

// ModulesScreen is the terminal screen. It lists the module options and a
// Next button; neither selection nor Next is wired to anything yet.
type ModulesScreen struct {
	options []domain.ModuleOption
}

func NewModulesScreen() *ModulesScreen {
	return &ModulesScreen{options: domain.ModuleOptions()}
}

func (s *ModulesScreen) Options() []domain.ModuleOption { return s.options }

// Next does nothing.
func (s *ModulesScreen) Next() {}
