package services

import (
	"sort"
	"strings"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
)

// NoCategoryName é o nome do grupo sintético de serviços sem categoria
const NoCategoryName = "No Category"

// ServiceGroup é um grupo da listagem agrupada. Category nil é o grupo "No Category".
type ServiceGroup struct {
	Category *entities.Category
	Services []*entities.Service
}

// Name retorna o nome exibido do grupo
func (g ServiceGroup) Name() string {
	if g.Category == nil {
		return NoCategoryName
	}
	return g.Category.Name
}

// GroupByCategory distribui os serviços nas categorias.
// Cada serviço entra em no máximo um grupo: o do primeiro link para uma categoria
// presente na lista. Serviços sem link válido vão para "No Category", que só
// aparece, por último, quando não está vazio.
func GroupByCategory(
	categories []*entities.Category,
	services []*entities.Service,
	links []entities.CategoryLink,
) []ServiceGroup {
	sortedCategories := append([]*entities.Category(nil), categories...)
	sort.SliceStable(sortedCategories, func(i, j int) bool {
		return lessFold(sortedCategories[i].Name, sortedCategories[j].Name)
	})

	sortedServices := append([]*entities.Service(nil), services...)
	sort.SliceStable(sortedServices, func(i, j int) bool {
		return lessFold(sortedServices[i].Name, sortedServices[j].Name)
	})

	groups := make([]ServiceGroup, 0, len(sortedCategories)+1)
	bucket := make(map[string]int, len(sortedCategories))
	for i, category := range sortedCategories {
		groups = append(groups, ServiceGroup{Category: category, Services: []*entities.Service{}})
		bucket[category.ID] = i
	}

	linksByService := make(map[string][]string, len(links))
	for _, link := range links {
		linksByService[link.ServiceID] = append(linksByService[link.ServiceID], link.CategoryID)
	}

	uncategorized := ServiceGroup{Services: []*entities.Service{}}

	for _, service := range sortedServices {
		placed := false
		for _, categoryID := range linksByService[service.ID] {
			if i, ok := bucket[categoryID]; ok {
				groups[i].Services = append(groups[i].Services, service)
				placed = true
				break
			}
		}
		if !placed {
			uncategorized.Services = append(uncategorized.Services, service)
		}
	}

	if len(uncategorized.Services) > 0 {
		groups = append(groups, uncategorized)
	}

	return groups
}

func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return a < b
	}
	return la < lb
}
