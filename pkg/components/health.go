package components

// HealthComponent 存储敌人的生命值
type HealthComponent struct {
	CurrentHealth int
	MaxHealth     int
}

// Ratio 返回剩余生命比例 [0, 1]
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	r := float64(h.CurrentHealth) / float64(h.MaxHealth)
	if r < 0 {
		return 0
	}
	return r
}
