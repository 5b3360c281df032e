package services

import (
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
	portssvc "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/platform/config"
	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/pricing"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Medicine = NewMedicineService(repos.MedicineRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.MedicineRepo, pricing.TaxBase(cfg.TaxBase))

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.MedicineSvcFacade = (*medicineService)(nil)
	_ portssvc.SaleSvcFacade     = (*saleService)(nil)
)
