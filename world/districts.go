package world

import (
	"image/color"

	"neoncity/entity"
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{r, g, b, 255} }

// Downtown 起始街区：商店与主线 NPC
func Downtown() *District {
	d := NewDistrict("downtown", "Downtown", 40, 40, 20, 35)
	d.fill(Ground())

	for x := 0; x < d.Width; x++ {
		variant := 0
		if x%4 == 0 {
			variant = 1
		}
		d.SetTile(x, 20, Road(variant))
		d.SetTile(x, 21, Road(0))
		d.SetTile(x, 19, Sidewalk())
		d.SetTile(x, 22, Sidewalk())
	}
	for y := 0; y < d.Height; y++ {
		variant := 0
		if y%4 == 0 {
			variant = 1
		}
		d.SetTile(20, y, Road(variant))
		d.SetTile(21, y, Road(0))
		d.SetTile(19, y, Sidewalk())
		d.SetTile(22, y, Sidewalk())
	}

	d.buildingBlock(2, 2, 8, 6, rgb(60, 50, 70), 4, true, Cyan)
	d.buildingBlock(12, 2, 6, 5, rgb(70, 60, 60), 3, true, Magenta)
	d.buildingBlock(24, 2, 10, 7, rgb(50, 60, 70), 5, true, Yellow)
	d.buildingBlock(2, 25, 7, 5, rgb(65, 55, 65), 3, false, Cyan)
	d.buildingBlock(11, 25, 6, 6, rgb(55, 65, 75), 4, true, rgb(255, 100, 0))
	d.buildingBlock(24, 25, 8, 5, rgb(60, 60, 80), 3, true, Green)
	d.buildingBlock(30, 8, 8, 4, rgb(70, 50, 60), 3, true, Magenta)
	d.buildingBlock(32, 26, 6, 6, rgb(55, 55, 70), 4, false, Cyan)
	d.buildingBlock(2, 10, 5, 4, rgb(60, 60, 70), 2, false, Cyan)

	// Night Owl 酒吧入口
	d.SetTile(15, 24, Door("bar_interior", rgb(80, 40, 40), rgb(255, 100, 0)))

	for y := 32; y < 38; y++ {
		for x := 5; x < 15; x++ {
			variant := 0
			if (x+y)%3 == 0 {
				variant = 1
			}
			d.SetTile(x, y, Park(variant))
		}
	}

	d.SetTile(0, 20, Transition("industrial"))
	d.SetTile(0, 21, Transition("industrial"))
	d.SetTile(39, 20, Transition("corporate"))
	d.SetTile(39, 21, Transition("corporate"))
	d.SetTile(20, 0, Transition("residential"))
	d.SetTile(21, 0, Transition("residential"))
	d.SetTile(20, 39, Transition("docks"))
	d.SetTile(21, 39, Transition("docks"))

	d.AddNPC(entity.NewQuestGiver("max", "Max", 14, 23, "main_01", []entity.DialogueNode{
		entity.Node("You must be the new runner. I've been expecting you. The name's Max.",
			entity.Reply("I'm looking for work.", entity.GoTo(1)),
			entity.Reply("What is this place?", entity.GoTo(2))),
		entity.Node("Good. I have a job that needs doing. A data chip went missing from a corpo facility. I need someone to retrieve it.",
			entity.Reply("I'm interested.", entity.GoTo(3)),
			entity.Reply("Sounds dangerous.", entity.GoTo(3))),
		entity.Node("This is the Night Owl. A place for people who don't want to be found. We deal in information here.",
			entity.Reply("I see. About that work...", entity.GoTo(1)),
			entity.Reply("Interesting.", entity.End)),
		{
			Text:        "It pays well. Head to the Corporate district. The chip is in Nexus Tower, floor 15. Come back when you have it.",
			Responses:   []entity.Response{entity.Reply("I'll get it done.", entity.End)},
			QuestAction: "accept_main_02",
		},
	}))
	d.AddNPC(entity.NewMerchant("vendor_tech", "Rico", 8, 18, []string{"medkit", "stim_pack", "hack_chip"}))
	d.AddNPC(entity.NewInformant("info_01", "Whisper", 28, 18))

	kid := entity.NewCivilian("civ_01", "Street Kid", 25, 30)
	kid.Behavior = entity.BehaviorWander
	d.AddNPC(kid)
	d.AddNPC(entity.NewCivilian("civ_02", "Worker", 10, 33))
	return d
}

// Corporate 企业区：高塔与巡逻保安
func Corporate() *District {
	d := NewDistrict("corporate", "Corporate District", 40, 40, 2, 20)
	d.fill(Sidewalk())

	for x := 0; x < d.Width; x++ {
		for _, y := range []int{15, 16, 25, 26} {
			d.SetTile(x, y, Road(0))
		}
	}

	d.buildingBlock(8, 2, 12, 10, rgb(40, 50, 70), 8, true, rgb(0, 150, 255))
	d.buildingBlock(25, 2, 10, 8, rgb(50, 50, 60), 7, true, White)
	d.buildingBlock(10, 20, 8, 6, rgb(45, 55, 65), 6, true, rgb(100, 200, 255))
	d.buildingBlock(25, 30, 12, 8, rgb(35, 45, 55), 9, true, rgb(0, 200, 200))
	// Nexus Tower
	d.buildingBlock(30, 18, 8, 8, rgb(30, 40, 60), 10, true, rgb(255, 0, 100))
	d.SetTile(30, 22, Door("nexus_interior", rgb(50, 50, 70), rgb(255, 0, 100)))

	d.SetTile(0, 15, Transition("downtown"))
	d.SetTile(0, 16, Transition("downtown"))

	guard := entity.NewNPC("guard_01", "Security Guard", 20, 20, entity.NPCGuard)
	guard.AccentColor = rgb(50, 50, 150)
	guard.Dialogue = []entity.DialogueNode{
		entity.Node("Move along, citizen. This area is monitored.",
			entity.Reply("Sure thing.", entity.End)),
	}
	guard.Behavior = entity.BehaviorPatrol
	guard.Patrol = []entity.Waypoint{{X: 15, Y: 18}, {X: 25, Y: 18}, {X: 25, Y: 28}, {X: 15, Y: 28}}
	d.AddNPC(guard)
	return d
}

// Industrial 工业区：仓库、运河与帮派地盘
func Industrial() *District {
	d := NewDistrict("industrial", "Industrial Zone", 40, 40, 38, 20)
	d.Ambient = rgb(28, 20, 18) // 烟雾
	d.fill(Ground().WithColor(rgb(35, 35, 40)))

	for x := 0; x < d.Width; x++ {
		d.SetTile(x, 20, Road(0))
		d.SetTile(x, 21, Road(0))
	}

	d.buildingBlock(5, 5, 10, 8, rgb(50, 45, 40), 2, false, Cyan)
	d.buildingBlock(20, 5, 12, 6, rgb(45, 40, 35), 2, true, rgb(255, 100, 0))
	d.buildingBlock(5, 25, 8, 6, rgb(55, 50, 45), 2, false, Cyan)
	d.buildingBlock(18, 28, 10, 8, rgb(40, 35, 30), 3, true, rgb(200, 50, 50))

	for y := 0; y < d.Height; y++ {
		d.SetTile(35, y, Water())
		d.SetTile(36, y, Water())
	}

	d.SetTile(39, 20, Transition("downtown"))
	d.SetTile(39, 21, Transition("downtown"))

	gang := entity.NewNPC("gang_01", "Rust Devil", 15, 15, entity.NPCGangMember)
	gang.AccentColor = rgb(200, 50, 50)
	gang.HairColor = rgb(200, 50, 50)
	gang.Dialogue = []entity.DialogueNode{
		entity.Node("You're in Rust Devil territory now. Best watch your step.",
			entity.Reply("I'm just passing through.", entity.End),
			entity.Reply("You don't scare me.", entity.GoTo(1))),
		entity.Node("Heh. Brave words. But brave doesn't stop a bullet. Get lost.",
			entity.Reply("Fine.", entity.End)),
	}
	d.AddNPC(gang)
	return d
}

// Residential 居民区
func Residential() *District {
	d := NewDistrict("residential", "The Blocks", 40, 40, 20, 38)
	d.fill(Sidewalk())

	for y := 0; y < d.Height; y++ {
		for _, x := range []int{12, 13, 27, 28} {
			d.SetTile(x, y, Road(0))
		}
	}
	for x := 0; x < d.Width; x++ {
		d.SetTile(x, 20, Road(0))
		d.SetTile(x, 21, Road(0))
	}

	d.buildingBlock(2, 2, 8, 8, rgb(65, 60, 55), 5, true, rgb(255, 200, 100))
	d.buildingBlock(16, 2, 10, 6, rgb(60, 55, 60), 4, true, rgb(200, 150, 255))
	d.buildingBlock(30, 5, 7, 7, rgb(55, 55, 65), 5, true, rgb(100, 255, 200))
	d.buildingBlock(2, 25, 8, 6, rgb(60, 60, 60), 4, true, rgb(255, 150, 100))
	d.buildingBlock(16, 28, 9, 8, rgb(55, 50, 55), 5, true, rgb(255, 255, 100))
	d.buildingBlock(30, 25, 8, 8, rgb(65, 55, 60), 4, false, Cyan)

	for y := 10; y < 15; y++ {
		for x := 2; x < 8; x++ {
			d.SetTile(x, y, Park(0))
		}
	}

	d.SetTile(20, 39, Transition("downtown"))
	d.SetTile(21, 39, Transition("downtown"))

	old := entity.NewCivilian("resident_01", "Old Timer", 5, 12)
	old.Dialogue = []entity.DialogueNode{
		entity.Node("I've lived in these blocks for 40 years. Seen the city change... and not for the better.",
			entity.Reply("What was it like before?", entity.GoTo(1)),
			entity.Reply("Times change.", entity.End)),
		entity.Node("People used to know their neighbors. Now everyone's plugged into their screens, afraid of the corps, afraid of each other.",
			entity.Reply("Sounds rough.", entity.End),
			entity.Reply("Thanks for sharing.", entity.End)),
	}
	d.AddNPC(old)
	return d
}

// Docks 港口区：码头与黑市
func Docks() *District {
	d := NewDistrict("docks", "Harbor District", 40, 40, 20, 2)
	d.Ambient = rgb(10, 20, 34)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if y > 25 {
				d.SetTile(x, y, Water())
			} else {
				d.SetTile(x, y, Ground().WithColor(rgb(40, 40, 45)))
			}
		}
	}

	for x := 5; x < 35; x++ {
		d.SetTile(x, 24, Sidewalk())
		d.SetTile(x, 25, Sidewalk())
	}
	// 栈桥伸入水中
	for y := 25; y < 35; y++ {
		for x := 18; x < 23; x++ {
			d.SetTile(x, y, Sidewalk().WithColor(rgb(60, 50, 40)))
		}
	}

	d.buildingBlock(5, 5, 10, 6, rgb(50, 45, 40), 2, false, Cyan)
	d.buildingBlock(25, 8, 8, 5, rgb(45, 40, 35), 2, true, rgb(100, 200, 100))

	for x := 0; x < d.Width; x++ {
		d.SetTile(x, 2, Road(0))
		d.SetTile(x, 3, Road(0))
	}

	d.SetTile(20, 0, Transition("downtown"))
	d.SetTile(21, 0, Transition("downtown"))

	dealer := entity.NewMerchant("black_market", "Shadow", 20, 30, []string{"military_stim", "stealth_chip", "emp_grenade"})
	dealer.Dialogue = []entity.DialogueNode{
		entity.Node("Looking for something... special? I've got gear you won't find in any store.",
			entity.Reply("Show me.", entity.GoTo(1)),
			entity.Reply("Maybe later.", entity.End)),
		entity.Node("Keep it quiet. The corps don't like competition.",
			entity.Reply("Understood.", entity.End)),
	}
	dealer.AccentColor = rgb(80, 80, 80)
	dealer.BodyColor = rgb(30, 30, 35)
	d.AddNPC(dealer)
	return d
}
