package world

import (
	"fmt"
	"slices"
	"sync"
)

// StartDistrict 起始街区
const StartDistrict = "downtown"

// Connections 街区邻接表
//
//	               [Residential]
//	                    |
//	[Industrial] - [Downtown] - [Corporate]
//	                    |
//	                 [Docks]
var Connections = map[string][]string{
	"downtown":    {"corporate", "industrial", "residential", "docks"},
	"corporate":   {"downtown"},
	"industrial":  {"downtown"},
	"residential": {"downtown"},
	"docks":       {"downtown"},
}

// CityMap 街区注册表
type CityMap struct {
	mu        sync.RWMutex
	districts map[string]*District
}

// NewCityMap 以内置街区创建城市
func NewCityMap() (*CityMap, error) {
	return NewCityMapFrom(Downtown(), Corporate(), Industrial(), Residential(), Docks())
}

// NewCityMapFrom 以给定街区创建城市，会校验 NPC 对话
func NewCityMapFrom(districts ...*District) (*CityMap, error) {
	m := &CityMap{districts: make(map[string]*District, len(districts))}
	for _, d := range districts {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m.districts[d.ID]; dup {
			return nil, fmt.Errorf("duplicate district %q", d.ID)
		}
		m.districts[d.ID] = d
	}
	return m, nil
}

func (m *CityMap) District(id string) (*District, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.districts[id]
	return d, ok
}

// Start 起始街区；不存在时回退到任意一个（按 id 排序）
func (m *CityMap) Start() *District {
	if d, ok := m.District(StartDistrict); ok {
		return d
	}
	all := m.Districts()
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// Districts 按 id 排序
func (m *CityMap) Districts() []*District {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*District, 0, len(m.districts))
	for _, d := range m.districts {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *District) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// Connected 与 id 相邻且已注册的街区
func (m *CityMap) Connected(id string) []*District {
	var out []*District
	for _, next := range Connections[id] {
		if d, ok := m.District(next); ok {
			out = append(out, d)
		}
	}
	return out
}
