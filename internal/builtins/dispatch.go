package builtins

import "github.com/kolkov/mwscript/internal/bytecode"

// buckets[n] holds the commands taking exactly n parameters.
var buckets [MaxParams + 1]map[string]encoder

func init() {
	buckets[0] = make(map[string]encoder, len(zeroParam))
	for name, code := range zeroParam {
		s := sig(code, "")
		for _, b := range zeroTails[name] {
			s.steps = append(s.steps, step{literal: b})
		}
		buckets[0][name] = s
	}

	buckets[1] = oneParam
	for name, code := range modStats {
		oneParam[name] = sig(code, "F|L")
	}
	for name, code := range setStats {
		oneParam[name] = sig(code, "F|L")
	}

	buckets[2] = twoParams
	buckets[3] = threeParams
	buckets[4] = fourParams
	buckets[5] = fiveParams
	buckets[6] = sixParams
	buckets[7] = sevenParams
	buckets[8] = eightParams
	buckets[9] = nineParams
	buckets[10] = tenParams
	buckets[11] = elevenParams
	buckets[12] = twelveParams
}

var oneParam = map[string]encoder{
	"addspell":           sig(bytecode.AddSpell, "S"),
	"addtopic":           sig(bytecode.AddTopic, "S"),
	"aiactivate":         sig(bytecode.AIActivate, "S 00"),
	"dropsoulgem":        sig(bytecode.DropSoulGem, "S"),
	"equip":              sig(bytecode.Equip, "S"),
	"explodespell":       sig(bytecode.ExplodeSpell, "S"),
	"fadein":             sig(bytecode.FadeIn, "f"),
	"fadeout":            sig(bytecode.FadeOut, "f"),
	"getangle":           sig(bytecode.GetAngle, "A"),
	"getarmortype":       sig(bytecode.GetArmorType, "h"),
	"getdeadcount":       sig(bytecode.GetDeathCount, "S"),
	"getdetected":        sig(bytecode.GetDetected, "S"),
	"getdistance":        marked(bytecode.GetDistance, "S", 0x20, 0x72),
	"geteffect":          sig(bytecode.GetEffect, "E"),
	"getitemcount":       marked(bytecode.GetItemCount, "S", 0x20, 0x6F),
	"getjournalindex":    marked(bytecode.GetJournalIndex, "S", 0x20, 0x64),
	"getlineofsight":     marked(bytecode.GetLineOfSight, "S", 0x20, 0x72),
	"getlos":             marked(bytecode.GetLOS, "S", 0x20, 0x72),
	"getpccell":          sig(bytecode.GetPCCell, "S"),
	"getpcfacrep":        sig(bytecode.GetPCFacRep, "S"),
	"getpcrank":          sig(bytecode.GetPCRank, "S"),
	"getpos":             sig(bytecode.GetPos, "A"),
	"getrace":            sig(bytecode.GetRace, "S"),
	"getsoundplaying":    sig(bytecode.GetSoundPlaying, "S"),
	"getspell":           marked(bytecode.GetSpell, "S", 0x20, 0x6F),
	"getspelleffects":    sig(bytecode.GetSpellEffects, "S"),
	"getsquareroot":      sig(bytecode.GetSquareRoot, "F|L"),
	"getstartingangle":   sig(bytecode.GetStartingAngle, "A"),
	"getstartingpos":     sig(bytecode.GetStartingPos, "A"),
	"gettarget":          sig(bytecode.GetTarget, "S"),
	"hasitemequipped":    sig(bytecode.HasItemEquipped, "S"),
	"hassoulgem":         sig(bytecode.HasSoulgem, "S"),
	"hitattemptonme":     sig(bytecode.HitAttemptOnMe, "S"),
	"hitonme":            sig(bytecode.HitOnMe, "S"),
	"hurtcollidingactor": sig(bytecode.HurtCollidingActor, "f"),
	"hurtstandingactor":  sig(bytecode.HurtStandingActor, "f"),
	"lock":               sig(bytecode.Lock, "h"),
	"menutest":           sig(bytecode.MenuTest, "S16"),
	"messagebox":         sig(bytecode.MessageBox, "S16 00 00"),
	"modpcfacrep":        sig(bytecode.ModPCFacRep, "f 00"),
	"pcclearexpelled":    sig(bytecode.PCClearExpelled, "S"),
	"pcexpell":           sig(bytecode.PCExpell, "S"),
	"pcexpelled":         sig(bytecode.PCExpelled, "S"),
	"pcjoinfaction":      sig(bytecode.PCJoinFaction, "S"),
	"pclowerrank":        sig(bytecode.PCLowerRank, "S"),
	"pcraiserank":        sig(bytecode.PCRaiseRank, "S"),
	"playgroup":          sig(bytecode.PlayGroup, "G 00"),
	"playloopsound3d":    sig(bytecode.PlayLoopSound3D, "S"),
	"playsound":          sig(bytecode.PlaySound, "S"),
	"playsound3d":        sig(bytecode.PlaySound3D, "S"),
	"random":             sig(bytecode.Random, "h"),
	"removeeffects":      encoderFunc(removeEffects),
	"removesoulgem":      sig(bytecode.RemoveSoulGem, "S"),
	"removespell":        sig(bytecode.RemoveSpell, "S"),
	"removespelleffects": sig(bytecode.RemoveSpellEffects, "S"),
	"repairedonme":       sig(bytecode.RepairedOnMe, "S"),
	"scriptrunning":      sig(bytecode.ScriptRunning, "S"),
	"setdelete":          encoderFunc(setDelete),
	"setlevel":           sig(bytecode.SetLevel, "h"),
	"setpcfacrep":        sig(bytecode.SetPCFacRep, "f 00"),
	"showmap":            sig(bytecode.ShowMap, "S"),
	"startcombat":        sig(bytecode.StartCombat, "S"),
	"startscript":        sig(bytecode.StartScript, "S"),
	"stopcombat":         sig(bytecode.StopCombat, ""),
	"stopscript":         sig(bytecode.StopScript, "S"),
	"stopsound":          sig(bytecode.StopSound, "S"),
	"streammusic":        sig(bytecode.StreamMusic, "S"),
}

var twoParams = map[string]encoder{
	"additem":         sig(bytecode.AddItem, "S h"),
	"addsoulgem":      sig(bytecode.AddSoulGem, "S S"),
	"cast":            sig(bytecode.Cast, "S S"),
	"changeweather":   sig(bytecode.ChangeWeather, "S h"),
	"drop":            sig(bytecode.Drop, "S h"),
	"face":            sig(bytecode.Face, "f f"),
	"fadeto":          sig(bytecode.FadeTo, "l f"),
	"journal":         sig(bytecode.Journal, "S h FF FF"),
	"loopgroup":       sig(bytecode.LoopGroup, "G b 00"),
	"modpcfacrep":     sig(bytecode.ModPCFacRep, "f S"),
	"move":            sig(bytecode.Move, "A f"),
	"moveworld":       sig(bytecode.MoveWorld, "A f"),
	"playbink":        sig(bytecode.PlayBink, "S b"),
	"playgroup":       sig(bytecode.PlayGroup, "G b"),
	"removeitem":      sig(bytecode.RemoveItem, "S h"),
	"removesoulgem":   sig(bytecode.RemoveSoulGem, "S"),
	"rotate":          sig(bytecode.Rotate, "A f"),
	"rotateworld":     sig(bytecode.RotateWorld, "A f"),
	"say":             sig(bytecode.Say, "S S16"),
	"setangle":        sig(bytecode.SetAngle, "A F|L"),
	"setjournalindex": sig(bytecode.SetJournalIndex, "S h FF FF"),
	"setpcfacrep":     sig(bytecode.SetPCFacRep, "f S"),
	"setpos":          sig(bytecode.SetPos, "A F|L"),
}

var threeParams = map[string]encoder{
	"addtolevcreature":      sig(bytecode.AddToLevCreature, "S S f"),
	"addtolevitem":          sig(bytecode.AddToLevItem, "S S f"),
	"aitravel":              sig(bytecode.AITravel, "f f f 00"),
	"aiwander":              sig(bytecode.AIWander, "f f f 00 00 00"),
	"face":                  sig(bytecode.Face, "f f"),
	"loopgroup":             sig(bytecode.LoopGroup, "G b b"),
	"modfactionreaction":    sig(bytecode.ModFactionReaction, "S S h"),
	"playloopsound3dvp":     sig(bytecode.PlayLoopSound3DVP, "S f f"),
	"playsound3dvp":         sig(bytecode.PlaySound3DVP, "S f f"),
	"playsoundvp":           sig(bytecode.PlaySoundVP, "S f f"),
	"removefromlevcreature": sig(bytecode.RemoveFromLevCreature, "S S f"),
	"removefromlevitem":     sig(bytecode.RemoveFromLevItem, "S S f"),
	"setfactionreaction":    sig(bytecode.SetFactionReaction, "S S h"),
}

var fourParams = map[string]encoder{
	"aitravel":  sig(bytecode.AITravel, "f f f n"),
	"placeatme": sig(bytecode.PlaceAtMe, "S h f h"),
	"placeatpc": sig(bytecode.PlaceAtPC, "S h f h"),
	"position":  sig(bytecode.Position, "f f f f"),
}

var fiveParams = map[string]encoder{
	"aiescort":     sig(bytecode.AIEscort, "S h f f f 00"),
	"aifollow":     sig(bytecode.AIFollow, "S h f f f 00"),
	"placeitem":    sig(bytecode.PlaceItem, "S F|L F|L F|L F|L"),
	"positioncell": sig(bytecode.PositionCell, "f f f f S"),
}

var sixParams = map[string]encoder{
	"aiescort":      sig(bytecode.AIEscort, "S h f f f 01"),
	"aiescortcell":  sig(bytecode.AIEscortCell, "S S h f f f 00"),
	"aifollow":      sig(bytecode.AIFollow, "S h f f f 01"),
	"aifollowcell":  sig(bytecode.AIFollowCell, "S S h f f f 00"),
	"aiwander":      encoderFunc(aiWander),
	"placeitemcell": sig(bytecode.PlaceItemCell, "S S F|L F|L F|L F|L"),
}

var sevenParams = map[string]encoder{
	"aiescortcell": sig(bytecode.AIEscortCell, "S S h f f f 01"),
	"aifollow":     sig(bytecode.AIFollow, "S h f f f 01"),
	"aifollowcell": sig(bytecode.AIFollowCell, "S S h f f f 01"),
	"aiwander":     encoderFunc(aiWander),
}

var eightParams = map[string]encoder{
	"aifollow": sig(bytecode.AIFollow, "S h f f f 01"),
	"aiwander": encoderFunc(aiWander),
}

var nineParams = map[string]encoder{
	"aiwander":  encoderFunc(aiWander),
	"modregion": sig(bytecode.ModRegion, "S b b b b b b b b 00 00"),
}

var tenParams = map[string]encoder{
	"aiwander": encoderFunc(aiWander),
}

var elevenParams = map[string]encoder{
	"aiwander":  encoderFunc(aiWander),
	"modregion": sig(bytecode.ModRegion, "S b b b b b b b b b b"),
}

var twelveParams = map[string]encoder{
	"aiwander": encoderFunc(aiWander),
}
