package rpg

const (
	DefaultCredits  = 500
	DefaultMaxSlots = 32
)

// Inventory 背包：有序物品堆叠 + 信用点
type Inventory struct {
	Items    []Item
	Credits  int
	MaxSlots int
}

// NewInventory 初始背包：500 信用点，医疗包与兴奋剂各一
func NewInventory() *Inventory {
	inv := NewEmptyInventory(DefaultCredits, DefaultMaxSlots)
	inv.AddItem(MustItem("medkit"))
	inv.AddItem(MustItem("stim_pack"))
	return inv
}

func NewEmptyInventory(credits, maxSlots int) *Inventory {
	return &Inventory{Credits: credits, MaxSlots: maxSlots}
}

func (inv *Inventory) find(id string) int {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem 可堆叠物品与同 id 堆叠合并（背包满也可合并）；新占一格时受 MaxSlots 限制
func (inv *Inventory) AddItem(item Item) bool {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Stackable {
		if i := inv.find(item.ID); i >= 0 && inv.Items[i].Stackable {
			inv.Items[i].Quantity += item.Quantity
			return true
		}
	}
	if len(inv.Items) >= inv.MaxSlots {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveItem 数量不足时失败且不修改
func (inv *Inventory) RemoveItem(id string, quantity int) bool {
	i := inv.find(id)
	if i < 0 || quantity <= 0 {
		return false
	}
	switch {
	case inv.Items[i].Quantity > quantity:
		inv.Items[i].Quantity -= quantity
	case inv.Items[i].Quantity == quantity:
		inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	default:
		return false
	}
	return true
}

func (inv *Inventory) HasItem(id string, quantity int) bool {
	i := inv.find(id)
	return i >= 0 && inv.Items[i].Quantity >= quantity
}

func (inv *Inventory) Item(id string) (Item, bool) {
	i := inv.find(id)
	if i < 0 {
		return Item{}, false
	}
	return inv.Items[i], true
}

func (inv *Inventory) AddCredits(amount int) {
	inv.Credits += amount
}

// SpendCredits 余额不足返回 false
func (inv *Inventory) SpendCredits(amount int) bool {
	if amount < 0 || inv.Credits < amount {
		return false
	}
	inv.Credits -= amount
	return true
}

// Consumer 可被物品效果作用的对象
type Consumer interface {
	Heal(amount int)
	RestoreEnergy(amount float64)
}

// Use 使用一个带效果的物品并消耗一个；无效果或不存在返回 false
func (inv *Inventory) Use(id string, c Consumer) bool {
	it, ok := inv.Item(id)
	if !ok || it.Effect == nil {
		return false
	}
	switch it.Effect.Type {
	case EffectHeal:
		c.Heal(it.Effect.Value)
	case EffectRestoreEnergy:
		c.RestoreEnergy(float64(it.Effect.Value))
	default:
		return false
	}
	return inv.RemoveItem(id, 1)
}
