package modules

import "github.com/nfrund/lessonhub/internal/domain"

// ModulesData is the view model for the module selection page.
type ModulesData struct {
	Options []domain.ModuleOption
}
