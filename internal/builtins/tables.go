package builtins

import "github.com/kolkov/mwscript/internal/bytecode"

// zeroParam maps commands taking no parameters to their opcodes.
var zeroParam = map[string]bytecode.Opcode{
	"activate":                  bytecode.Activate,
	"becomewerewolf":            bytecode.BecomeWerewolf,
	"cellchanged":               bytecode.CellChanged,
	"cellupdate":                bytecode.CellUpdate,
	"clearforcejump":            bytecode.ClearForceJump,
	"clearforcemovejump":        bytecode.ClearForceMoveJump,
	"clearforcerun":             bytecode.ClearForceRun,
	"clearforcesneak":           bytecode.ClearForceSneak,
	"clearinfoactor":            bytecode.ClearInfoActor,
	"disable":                   bytecode.Disable,
	"disablelevitation":         bytecode.DisableLevitation,
	"disableplayercontrols":     bytecode.DisablePlayerControls,
	"disableplayerfighting":     bytecode.DisablePlayerFighting,
	"disableplayerjumping":      bytecode.DisablePlayerJumping,
	"disableplayerlooking":      bytecode.DisablePlayerLooking,
	"disableplayermagic":        bytecode.DisablePlayerMagic,
	"disableplayerviewswitch":   bytecode.DisablePlayerViewSwitch,
	"disableteleporting":        bytecode.DisableTeleporting,
	"disablevanitymode":         bytecode.DisableVanityMode,
	"dontsaveobject":            bytecode.DontSaveObject,
	"enable":                    bytecode.Enable,
	"enablebirthmenu":           bytecode.EnableBirthMenu,
	"enableclassmenu":           bytecode.EnableClassMenu,
	"enableinventorymenu":       bytecode.EnableInventoryMenu,
	"enablelevelupmenu":         bytecode.EnableLevelUpMenu,
	"enablelevitation":          bytecode.EnableLevitation,
	"enablemagicmenu":           bytecode.EnableMagicMenu,
	"enablemapmenu":             bytecode.EnableMapMenu,
	"enablenamemenu":            bytecode.EnableNameMenu,
	"enableplayercontrols":      bytecode.EnablePlayerControls,
	"enableplayerfighting":      bytecode.EnablePlayerFighting,
	"enableplayerjumping":       bytecode.EnablePlayerJumping,
	"enableplayerlooking":       bytecode.EnablePlayerLooking,
	"enableplayermagic":         bytecode.EnablePlayerMagic,
	"enableplayerviewswitch":    bytecode.EnablePlayerViewSwitch,
	"enableracemenu":            bytecode.EnableRaceMenu,
	"enablerest":                bytecode.EnableRest,
	"enablestatreviewmenu":      bytecode.EnableStatReviewMenu,
	"enablestatsmenu":           bytecode.EnableStatsMenu,
	"enableteleporting":         bytecode.EnableTeleporting,
	"enablevanitymode":          bytecode.EnableVanityMode,
	"fall":                      bytecode.Fall,
	"fillmap":                   bytecode.FillMap,
	"fixme":                     bytecode.FixMe,
	"forcegreeting":             bytecode.ForceGreeting,
	"forcejump":                 bytecode.ForceJump,
	"forcemovejump":             bytecode.ForceMoveJump,
	"forcerun":                  bytecode.ForceRun,
	"forcesneak":                bytecode.ForceSneak,
	"getacrobatics":             bytecode.GetAcrobatics,
	"getagility":                bytecode.GetAgility,
	"getaipackagedone":          bytecode.GetAIPackageDone,
	"getalarm":                  bytecode.GetAlarm,
	"getalchemy":                bytecode.GetAlchemy,
	"getalteration":             bytecode.GetAlteration,
	"getarmorbonus":             bytecode.GetArmorBonus,
	"getarmorer":                bytecode.GetArmorer,
	"getathletics":              bytecode.GetAthletics,
	"getattackbonus":            bytecode.GetAttackBonus,
	"getattacked":               bytecode.GetAttacked,
	"getaxe":                    bytecode.GetAxe,
	"getblightdisease":          bytecode.GetBlightDisease,
	"getblindness":              bytecode.GetBlindness,
	"getblock":                  bytecode.GetBlock,
	"getbluntweapon":            bytecode.GetBluntWeapon,
	"getbuttonpressed":          bytecode.GetButtonPressed,
	"getcastpenalty":            bytecode.GetCastPenalty,
	"getchameleon":              bytecode.GetChameleon,
	"getcollidingactor":         bytecode.GetCollidingActor,
	"getcollidingpc":            bytecode.GetCollidingPC,
	"getcommondisease":          bytecode.GetCommonDisease,
	"getconjuration":            bytecode.GetConjuration,
	"getcurrentaipackage":       bytecode.GetCurrentAIPackage,
	"getcurrenttime":            bytecode.GetCurrentTime,
	"getcurrentweather":         bytecode.GetCurrentWeather,
	"getdefendbonus":            bytecode.GetDefendBonus,
	"getdestruction":            bytecode.GetDestruction,
	"getdisabled":               bytecode.GetDisabled,
	"getdisposition":            bytecode.GetDisposition,
	"getenchant":                bytecode.GetEnchant,
	"getendurance":              bytecode.GetEndurance,
	"getfatigue":                bytecode.GetFatigue,
	"getfight":                  bytecode.GetFight,
	"getflee":                   bytecode.GetFlee,
	"getflying":                 bytecode.GetFlying,
	"getforcejump":              bytecode.GetForceJump,
	"getforcemovejump":          bytecode.GetForceMoveJump,
	"getforcerun":               bytecode.GetForceRun,
	"getforcesneak":             bytecode.GetForceSneak,
	"gethandtohand":             bytecode.GetHandToHand,
	"gethealth":                 bytecode.GetHealth,
	"gethealthgetratio":         bytecode.GetHealthGetRatio,
	"getheavyarmor":             bytecode.GetHeavyArmor,
	"gethello":                  bytecode.GetHello,
	"getillusion":               bytecode.GetIllusion,
	"getintelligence":           bytecode.GetIntelligence,
	"getinterior":               bytecode.GetInterior,
	"getinvisibile":             bytecode.GetInvisible,
	"getinvisible":              bytecode.GetInvisible,
	"getlevel":                  bytecode.GetLevel,
	"getlightarmor":             bytecode.GetLightArmor,
	"getlocked":                 bytecode.GetLocked,
	"getlongblade":              bytecode.GetLongBlade,
	"getluck":                   bytecode.GetLuck,
	"getmagicka":                bytecode.GetMagicka,
	"getmarksman":               bytecode.GetMarksman,
	"getmasserphase":            bytecode.GetMasserPhase,
	"getmediumarmor":            bytecode.GetMediumArmor,
	"getmercantile":             bytecode.GetMercantile,
	"getmysticism":              bytecode.GetMysticism,
	"getparalysis":              bytecode.GetParalysis,
	"getpccrimelevel":           bytecode.GetPCCrimeLevel,
	"getpcfacrep":               bytecode.GetPCFacRep,
	"getpcinjail":               bytecode.GetPCInJail,
	"getpcjumping":              bytecode.GetPCJumping,
	"getpcrank":                 bytecode.GetPCRank,
	"getpcrunning":              bytecode.GetPCRunning,
	"getpcsleep":                bytecode.GetPCSleep,
	"getpcsneaking":             bytecode.GetPCSneaking,
	"getpctraveling":            bytecode.GetPCTraveling,
	"getpcvisionbonus":          bytecode.GetPCVisionBonus,
	"getpersonality":            bytecode.GetPersonality,
	"getplayercontrolsdisabled": bytecode.GetPlayerControlsDisabled,
	"getplayerfightingdisabled": bytecode.GetPlayerFightingDisabled,
	"getplayerjumpingdisabled":  bytecode.GetPlayerJumpingDisabled,
	"getplayerlookingdisabled":  bytecode.GetPlayerLookingDisabled,
	"getplayermagicdisabled":    bytecode.GetPlayerMagicDisabled,
	"getreputation":             bytecode.GetReputation,
	"getresistblight":           bytecode.GetResistBlight,
	"getresistcorprus":          bytecode.GetResistCorprus,
	"getresistdisease":          bytecode.GetResistDisease,
	"getresistfire":             bytecode.GetResistFire,
	"getresistfrost":            bytecode.GetResistFrost,
	"getresistmagicka":          bytecode.GetResistMagicka,
	"getresistnormalweapons":    bytecode.GetResistNormalWeapons,
	"getresistparalysis":        bytecode.GetResistParalysis,
	"getresistpoison":           bytecode.GetResistPoison,
	"getresistshock":            bytecode.GetResistShock,
	"getrestoration":            bytecode.GetRestoration,
	"getscale":                  bytecode.GetScale,
	"getsecondspassed":          bytecode.GetSecondsPassed,
	"getsecundaphase":           bytecode.GetSecundaPhase,
	"getsecurity":               bytecode.GetSecurity,
	"getshortblade":             bytecode.GetShortBlade,
	"getsilence":                bytecode.GetSilence,
	"getsneak":                  bytecode.GetSneak,
	"getspear":                  bytecode.GetSpear,
	"getspeechcraft":            bytecode.GetSpeechcraft,
	"getspeed":                  bytecode.GetSpeed,
	"getspellreadied":           bytecode.GetSpellReadied,
	"getstandingactor":          bytecode.GetStandingActor,
	"getstandingpc":             bytecode.GetStandingPC,
	"getstrength":               bytecode.GetStrength,
	"getsuperjump":              bytecode.GetSuperJump,
	"getswimspeed":              bytecode.GetSwimSpeed,
	"getunarmored":              bytecode.GetUnarmored,
	"getvanitymodedisabled":     bytecode.GetVanityModeDisabled,
	"getwaterbreathing":         bytecode.GetWaterBreathing,
	"getwaterlevel":             bytecode.GetWaterLevel,
	"getwaterwalking":           bytecode.GetWaterWalking,
	"getweapondrawn":            bytecode.GetWeaponDrawn,
	"getweapontype":             bytecode.GetWeaponType,
	"getwerewolfkills":          bytecode.GetWerewolfKills,
	"getwillpower":              bytecode.GetWillpower,
	"getwindspeed":              bytecode.GetWindSpeed,
	"goodbye":                   bytecode.Goodbye,
	"gotojail":                  bytecode.GotoJail,
	"iswerewolf":                bytecode.IsWerewolf,
	"lowerrank":                 bytecode.LowerRank,
	"menumode":                  bytecode.MenuMode,
	"menutest":                  bytecode.MenuTest,
	"onactivate":                bytecode.OnActivate,
	"ondeath":                   bytecode.OnDeath,
	"onknockout":                bytecode.OnKnockout,
	"onmurder":                  bytecode.OnMurder,
	"payfine":                   bytecode.PayFine,
	"payfinethief":              bytecode.PayFineThief,
	"pcforce1stperson":          bytecode.PCForce1stPerson,
	"pcforce3rdperson":          bytecode.PCForce3rdPerson,
	"pcget3rdperson":            bytecode.PCGet3rdPerson,
	"pcraiserank":               bytecode.PCRaiseRank,
	"raiserank":                 bytecode.RaiseRank,
	"resurrect":                 bytecode.Resurrect,
	"samefaction":               bytecode.SameFaction,
	"saydone":                   bytecode.SayDone,
	"setatstart":                bytecode.SetAtStart,
	"setwerewolfacrobatics":     bytecode.SetWerewolfAcrobatics,
	"showrestmenu":              bytecode.ShowRestMenu,
	"skipanim":                  bytecode.SkipAnim,
	"stopcombat":                bytecode.StopCombat,
	"turnmoonred":               bytecode.TurnMoonRed,
	"turnmoonwhite":             bytecode.TurnMoonWhite,
	"undowerewolf":              bytecode.UndoWerewolf,
	"unlock":                    bytecode.Unlock,
	"wakeuppc":                  bytecode.WakeUpPC,
	"xbox":                      bytecode.XBox,
}

// zeroTails holds the padding written after some parameterless commands.
var zeroTails = map[string][]byte{
	"getpcfacrep": {0},
	"getpcrank":   {0},
	"menutest":    {0, 0},
	"pcraiserank": {0},
}

// modStats lists the Mod* commands adjusting an actor statistic.
var modStats = map[string]bytecode.Opcode{
	"modacrobatics":          bytecode.ModAcrobatics,
	"modagility":             bytecode.ModAgility,
	"modalarm":               bytecode.ModAlarm,
	"modalchemy":             bytecode.ModAlchemy,
	"modalteration":          bytecode.ModAlteration,
	"modarmorbonus":          bytecode.ModArmorBonus,
	"modarmorer":             bytecode.ModArmorer,
	"modathletics":           bytecode.ModAthletics,
	"modattackbonus":         bytecode.ModAttackBonus,
	"modaxe":                 bytecode.ModAxe,
	"modblindness":           bytecode.ModBlindness,
	"modblock":               bytecode.ModBlock,
	"modbluntweapon":         bytecode.ModBluntWeapon,
	"modcastpenalty":         bytecode.ModCastPenalty,
	"modchameleon":           bytecode.ModChameleon,
	"modconjuration":         bytecode.ModConjuration,
	"modcurrentfatigue":      bytecode.ModCurrentFatigue,
	"modcurrenthealth":       bytecode.ModCurrentHealth,
	"modcurrentmagicka":      bytecode.ModCurrentMagicka,
	"moddefendbonus":         bytecode.ModDefendBonus,
	"moddestruction":         bytecode.ModDestruction,
	"moddisposition":         bytecode.ModDisposition,
	"modenchant":             bytecode.ModEnchant,
	"modendurance":           bytecode.ModEndurance,
	"modfatigue":             bytecode.ModFatigue,
	"modfight":               bytecode.ModFight,
	"modflee":                bytecode.ModFlee,
	"modflying":              bytecode.ModFlying,
	"modhandtohand":          bytecode.ModHandToHand,
	"modhealth":              bytecode.ModHealth,
	"modheavyarmor":          bytecode.ModHeavyArmor,
	"modhello":               bytecode.ModHello,
	"modillusion":            bytecode.ModIllusion,
	"modintelligence":        bytecode.ModIntelligence,
	"modinvisible":           bytecode.ModInvisible,
	"modlightarmor":          bytecode.ModLightArmor,
	"modlongblade":           bytecode.ModLongBlade,
	"modluck":                bytecode.ModLuck,
	"modmagicka":             bytecode.ModMagicka,
	"modmarksman":            bytecode.ModMarksman,
	"modmediumarmor":         bytecode.ModMediumArmor,
	"modmercantile":          bytecode.ModMercantile,
	"modmysticism":           bytecode.ModMysticism,
	"modparalysis":           bytecode.ModParalysis,
	"modpccrimelevel":        bytecode.ModPCCrimeLevel,
	"modpcvisionbonus":       bytecode.ModPCVisionBonus,
	"modpersonality":         bytecode.ModPersonality,
	"modreputation":          bytecode.ModReputation,
	"modresistblight":        bytecode.ModResistBlight,
	"modresistcorprus":       bytecode.ModResistCorprus,
	"modresistdisease":       bytecode.ModResistDisease,
	"modresistfire":          bytecode.ModResistFire,
	"modresistfrost":         bytecode.ModResistFrost,
	"modresistmagicka":       bytecode.ModResistMagicka,
	"modresistnormalweapons": bytecode.ModResistNormalWeapons,
	"modresistparalysis":     bytecode.ModResistParalysis,
	"modresistpoison":        bytecode.ModResistPoison,
	"modresistshock":         bytecode.ModResistShock,
	"modrestoration":         bytecode.ModRestoration,
	"modscale":               bytecode.ModScale,
	"modsecurity":            bytecode.ModSecurity,
	"modshortblade":          bytecode.ModShortBlade,
	"modsilence":             bytecode.ModSilence,
	"modsneak":               bytecode.ModSneak,
	"modspear":               bytecode.ModSpear,
	"modspeechcraft":         bytecode.ModSpeechcraft,
	"modspeed":               bytecode.ModSpeed,
	"modstrength":            bytecode.ModStrength,
	"modsuperjump":           bytecode.ModSuperJump,
	"modswimspeed":           bytecode.ModSwimSpeed,
	"modunarmored":           bytecode.ModUnarmored,
	"modwaterbreathing":      bytecode.ModWaterBreathing,
	"modwaterlevel":          bytecode.ModWaterLevel,
	"modwaterwalking":        bytecode.ModWaterWalking,
	"modwillpower":           bytecode.ModWillpower,
}

// setStats lists the Set* commands assigning an actor statistic.
var setStats = map[string]bytecode.Opcode{
	"setacrobatics":          bytecode.SetAcrobatics,
	"setagility":             bytecode.SetAgility,
	"setalarm":               bytecode.SetAlarm,
	"setalchemy":             bytecode.SetAlchemy,
	"setalteration":          bytecode.SetAlteration,
	"setarmorbonus":          bytecode.SetArmorBonus,
	"setarmorer":             bytecode.SetArmorer,
	"setathletics":           bytecode.SetAthletics,
	"setattackbonus":         bytecode.SetAttackBonus,
	"setaxe":                 bytecode.SetAxe,
	"setblindness":           bytecode.SetBlindness,
	"setblock":               bytecode.SetBlock,
	"setbluntweapon":         bytecode.SetBluntWeapon,
	"setcastpenalty":         bytecode.SetCastPenalty,
	"setchameleon":           bytecode.SetChameleon,
	"setconjuration":         bytecode.SetConjuration,
	"setdefendbonus":         bytecode.SetDefendBonus,
	"setdestruction":         bytecode.SetDestruction,
	"setdisposition":         bytecode.SetDisposition,
	"setenchant":             bytecode.SetEnchant,
	"setendurance":           bytecode.SetEndurance,
	"setfatigue":             bytecode.SetFatigue,
	"setfight":               bytecode.SetFight,
	"setflee":                bytecode.SetFlee,
	"setflying":              bytecode.SetFlying,
	"sethandtohand":          bytecode.SetHandToHand,
	"sethealth":              bytecode.SetHealth,
	"setheavyarmor":          bytecode.SetHeavyArmor,
	"sethello":               bytecode.SetHello,
	"setillusion":            bytecode.SetIllusion,
	"setintelligence":        bytecode.SetIntelligence,
	"setinvisible":           bytecode.SetInvisible,
	"setlightarmor":          bytecode.SetLightArmor,
	"setlongblade":           bytecode.SetLongBlade,
	"setluck":                bytecode.SetLuck,
	"setmagicka":             bytecode.SetMagicka,
	"setmarksman":            bytecode.SetMarksman,
	"setmediumarmor":         bytecode.SetMediumArmor,
	"setmercantile":          bytecode.SetMercantile,
	"setmysticism":           bytecode.SetMysticism,
	"setparalysis":           bytecode.SetParalysis,
	"setpccrimelevel":        bytecode.SetPCCrimeLevel,
	"setpcvisionbonus":       bytecode.SetPCVisionBonus,
	"setpersonality":         bytecode.SetPersonality,
	"setreputation":          bytecode.SetReputation,
	"setresistblight":        bytecode.SetResistBlight,
	"setresistcorprus":       bytecode.SetResistCorprus,
	"setresistdisease":       bytecode.SetResistDisease,
	"setresistfire":          bytecode.SetResistFire,
	"setresistfrost":         bytecode.SetResistFrost,
	"setresistmagicka":       bytecode.SetResistMagicka,
	"setresistnormalweapons": bytecode.SetResistNormalWeapons,
	"setresistparalysis":     bytecode.SetResistParalysis,
	"setresistpoison":        bytecode.SetResistPoison,
	"setresistshock":         bytecode.SetResistShock,
	"setrestoration":         bytecode.SetRestoration,
	"setscale":               bytecode.SetScale,
	"setsecurity":            bytecode.SetSecurity,
	"setshortblade":          bytecode.SetShortBlade,
	"setsilence":             bytecode.SetSilence,
	"setsneak":               bytecode.SetSneak,
	"setspear":               bytecode.SetSpear,
	"setspeechcraft":         bytecode.SetSpeechcraft,
	"setspeed":               bytecode.SetSpeed,
	"setstrength":            bytecode.SetStrength,
	"setsuperjump":           bytecode.SetSuperJump,
	"setswimspeed":           bytecode.SetSwimSpeed,
	"setunarmored":           bytecode.SetUnarmored,
	"setwaterbreathing":      bytecode.SetWaterBreathing,
	"setwaterlevel":          bytecode.SetWaterLevel,
	"setwaterwalking":        bytecode.SetWaterWalking,
	"setwillpower":           bytecode.SetWillpower,
}
