// Package modules lists the gallery service's feature modules.
package modules

import (
	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/modules/api"
	"github.com/louisbranch/portfolio/internal/services/gallery/modules/portfolio"
)

// Default returns the stable gallery modules.
func Default() []module.Module {
	return []module.Module{
		portfolio.New(),
		api.New(),
	}
}
