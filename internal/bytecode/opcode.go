// Package bytecode defines the opcodes and byte-level encoding primitives of
// compiled script data.
package bytecode

import "fmt"

// Opcode is a 16-bit instruction code. It is stored little-endian.
type Opcode uint16

// Statement codes
const (
	End       Opcode = 0x0101 // end of script
	Set       Opcode = 0x0105 // set <var> to <expr>
	If        Opcode = 0x0106 // if <cond>
	ElseIf    Opcode = 0x0107 // elseif <cond>
	Else      Opcode = 0x0108 // else
	EndIf     Opcode = 0x0109 // endif
	While     Opcode = 0x010A // while <cond>
	EndWhile  Opcode = 0x010B // endwhile
	Qualifier Opcode = 0x010C // <object>-> prefix
	Return    Opcode = 0x0124 // return
)

// Command codes
const (
	Activate                  Opcode = 0x1017
	AddItem                   Opcode = 0x10D4
	AddSoulGem                Opcode = 0x10EB
	AddSpell                  Opcode = 0x111D
	AddToLevCreature          Opcode = 0x11A6
	AddToLevItem              Opcode = 0x11A8
	AddTopic                  Opcode = 0x1022
	AIActivate                Opcode = 0x10F9
	AIEscort                  Opcode = 0x10F4
	AIEscortCell              Opcode = 0x10F5
	AIFollow                  Opcode = 0x10F7
	AIFollowCell              Opcode = 0x10F8
	AITravel                  Opcode = 0x10F3
	AIWander                  Opcode = 0x10F6
	BecomeWerewolf            Opcode = 0x11B3
	Cast                      Opcode = 0x1123
	CellChanged               Opcode = 0x101F
	CellUpdate                Opcode = 0x1013
	ChangeWeather             Opcode = 0x1124
	Choice                    Opcode = 0x10C9
	ClearForceJump            Opcode = 0x119E
	ClearForceMoveJump        Opcode = 0x11A1
	ClearForceRun             Opcode = 0x119B
	ClearForceSneak           Opcode = 0x1164
	ClearInfoActor            Opcode = 0x10CB
	Disable                   Opcode = 0x10DB
	DisableLevitation         Opcode = 0x1194
	DisablePlayerControls     Opcode = 0x10DE
	DisablePlayerFighting     Opcode = 0x115A
	DisablePlayerJumping      Opcode = 0x1140
	DisablePlayerLooking      Opcode = 0x1143
	DisablePlayerMagic        Opcode = 0x115D
	DisablePlayerViewSwitch   Opcode = 0x10E3
	DisableTeleporting        Opcode = 0x10EF
	DisableVanityMode         Opcode = 0x114C
	DontSaveObject            Opcode = 0x115F
	Drop                      Opcode = 0x110D
	DropSoulGem               Opcode = 0x10ED
	Enable                    Opcode = 0x10DA
	EnableBirthMenu           Opcode = 0x1129
	EnableClassMenu           Opcode = 0x1128
	EnableInventoryMenu       Opcode = 0x1118
	EnableLevelUpMenu         Opcode = 0x1158
	EnableLevitation          Opcode = 0x1193
	EnableMagicMenu           Opcode = 0x111A
	EnableMapMenu             Opcode = 0x1119
	EnableNameMenu            Opcode = 0x1126
	EnablePlayerControls      Opcode = 0x10DD
	EnablePlayerFighting      Opcode = 0x1159
	EnablePlayerJumping       Opcode = 0x113F
	EnablePlayerLooking       Opcode = 0x1142
	EnablePlayerMagic         Opcode = 0x115C
	EnablePlayerViewSwitch    Opcode = 0x10E2
	EnableRaceMenu            Opcode = 0x1127
	EnableRest                Opcode = 0x013F
	EnableStatReviewMenu      Opcode = 0x1160
	EnableStatsMenu           Opcode = 0x1117
	EnableTeleporting         Opcode = 0x10EE
	EnableVanityMode          Opcode = 0x114B
	Equip                     Opcode = 0x110E
	ExplodeSpell              Opcode = 0x11AD
	Face                      Opcode = 0x110C
	FadeIn                    Opcode = 0x1131
	FadeOut                   Opcode = 0x1130
	FadeTo                    Opcode = 0x1145
	Fall                      Opcode = 0x1166
	FillMap                   Opcode = 0x013E
	FixMe                     Opcode = 0x0131
	ForceGreeting             Opcode = 0x10E8
	ForceJump                 Opcode = 0x119D
	ForceMoveJump             Opcode = 0x11A0
	ForceRun                  Opcode = 0x119A
	ForceSneak                Opcode = 0x1163
	GetAcrobatics             Opcode = 0x1077
	GetAgility                Opcode = 0x102C
	GetAIPackageDone          Opcode = 0x10FB
	GetAlarm                  Opcode = 0x1105
	GetAlchemy                Opcode = 0x106B
	GetAlteration             Opcode = 0x105C
	GetAngle                  Opcode = 0x100C
	GetArmorBonus             Opcode = 0x1176
	GetArmorer                Opcode = 0x103E
	GetArmorType              Opcode = 0x1198
	GetAthletics              Opcode = 0x1053
	GetAttackBonus            Opcode = 0x10A2
	GetAttacked               Opcode = 0x1148
	GetAxe                    Opcode = 0x104D
	GetBlightDisease          Opcode = 0x114A
	GetBlindness              Opcode = 0x117F
	GetBlock                  Opcode = 0x103B
	GetBluntWeapon            Opcode = 0x1047
	GetButtonPressed          Opcode = 0x101E
	GetCastPenalty            Opcode = 0x1179
	GetChameleon              Opcode = 0x10C3
	GetCollidingActor         Opcode = 0x11A4
	GetCollidingPC            Opcode = 0x11A3
	GetCommonDisease          Opcode = 0x1149
	GetConjuration            Opcode = 0x1062
	GetCurrentAIPackage       Opcode = 0x10FA
	GetCurrentTime            Opcode = 0x1011
	GetCurrentWeather         Opcode = 0x10A1
	GetDeathCount             Opcode = 0x10FE
	GetDefendBonus            Opcode = 0x10A5
	GetDestruction            Opcode = 0x1059
	GetDetected               Opcode = 0x114E
	GetDisabled               Opcode = 0x10DC
	GetDisposition            Opcode = 0x1098
	GetDistance               Opcode = 0x1001
	GetEffect                 Opcode = 0x1138
	GetEnchant                Opcode = 0x1056
	GetEndurance              Opcode = 0x1032
	GetFatigue                Opcode = 0x1092
	GetFight                  Opcode = 0x10FF
	GetFlee                   Opcode = 0x1102
	GetFlying                 Opcode = 0x1173
	GetForceJump              Opcode = 0x119F
	GetForceMoveJump          Opcode = 0x11A2
	GetForceRun               Opcode = 0x119C
	GetForceSneak             Opcode = 0x1165
	GetHandToHand             Opcode = 0x1089
	GetHealth                 Opcode = 0x108C
	GetHealthGetRatio         Opcode = 0x1154
	GetHeavyArmor             Opcode = 0x1044
	GetHello                  Opcode = 0x1108
	GetIllusion               Opcode = 0x105F
	GetIntelligence           Opcode = 0x1026
	GetInterior               Opcode = 0x110B
	GetInvisible              Opcode = 0x1185
	GetItemCount              Opcode = 0x10FD
	GetJournalIndex           Opcode = 0x10CD
	GetLevel                  Opcode = 0x1157
	GetLightArmor             Opcode = 0x107A
	GetLineOfSight            Opcode = 0x10FC
	GetLocked                 Opcode = 0x1161
	GetLongBlade              Opcode = 0x104A
	GetLuck                   Opcode = 0x1038
	GetMagicka                Opcode = 0x108F
	GetMarksman               Opcode = 0x1080
	GetMasserPhase            Opcode = 0x1146
	GetMediumArmor            Opcode = 0x1041
	GetMercantile             Opcode = 0x1083
	GetMysticism              Opcode = 0x1065
	GetParalysis              Opcode = 0x1182
	GetPCCell                 Opcode = 0x1112
	GetPCCrimeLevel           Opcode = 0x109B
	GetPCFacRep               Opcode = 0x10D7
	GetPCInJail               Opcode = 0x11BB
	GetPCJumping              Opcode = 0x118C
	GetPCRank                 Opcode = 0x10D6
	GetPCRunning              Opcode = 0x118B
	GetPCSleep                Opcode = 0x10E0
	GetPCSneaking             Opcode = 0x118A
	GetPCTraveling            Opcode = 0x11BC
	GetPCVisionBonus          Opcode = 0x11B0
	GetPersonality            Opcode = 0x1035
	GetPlayerControlsDisabled Opcode = 0x10DF
	GetPlayerFightingDisabled Opcode = 0x115B
	GetPlayerJumpingDisabled  Opcode = 0x1141
	GetPlayerLookingDisabled  Opcode = 0x1144
	GetPlayerMagicDisabled    Opcode = 0x115E
	GetPos                    Opcode = 0x100A
	GetRace                   Opcode = 0x1139
	GetReputation             Opcode = 0x1095
	GetResistBlight           Opcode = 0x10B7
	GetResistCorprus          Opcode = 0x10BA
	GetResistDisease          Opcode = 0x10B4
	GetResistFire             Opcode = 0x10AB
	GetResistFrost            Opcode = 0x10AE
	GetResistMagicka          Opcode = 0x10A8
	GetResistNormalWeapons    Opcode = 0x10C6
	GetResistParalysis        Opcode = 0x10C0
	GetResistPoison           Opcode = 0x10BD
	GetResistShock            Opcode = 0x10B1
	GetRestoration            Opcode = 0x1068
	GetScale                  Opcode = 0x118D
	GetSecondsPassed          Opcode = 0x1012
	GetSecundaPhase           Opcode = 0x1147
	GetSecurity               Opcode = 0x1071
	GetShortBlade             Opcode = 0x107D
	GetSilence                Opcode = 0x117C
	GetSneak                  Opcode = 0x1074
	GetSoundPlaying           Opcode = 0x1188
	GetSpear                  Opcode = 0x1050
	GetSpeechcraft            Opcode = 0x1086
	GetSpeed                  Opcode = 0x102F
	GetSpell                  Opcode = 0x111F
	GetSpellEffects           Opcode = 0x1121
	GetSpellReadied           Opcode = 0x11AF
	GetSquareRoot             Opcode = 0x11AC
	GetStandingActor          Opcode = 0x1114
	GetStandingPC             Opcode = 0x1113
	GetStartingAngle          Opcode = 0x100F
	GetStartingPos            Opcode = 0x100E
	GetStrength               Opcode = 0x1023
	GetSuperJump              Opcode = 0x1170
	GetSwimSpeed              Opcode = 0x116D
	GetTarget                 Opcode = 0x1150
	GetUnarmored              Opcode = 0x106E
	GetVanityModeDisabled     Opcode = 0x114D
	GetWaterBreathing         Opcode = 0x1167
	GetWaterLevel             Opcode = 0x1190
	GetWaterWalking           Opcode = 0x116A
	GetWeaponDrawn            Opcode = 0x11AE
	GetWeaponType             Opcode = 0x1197
	GetWerewolfKills          Opcode = 0x11B6
	GetWillpower              Opcode = 0x1029
	GetWindSpeed              Opcode = 0x10A0
	Goodbye                   Opcode = 0x10CA
	GotoJail                  Opcode = 0x10E9
	HasItemEquipped           Opcode = 0x1199
	HasSoulgem                Opcode = 0x10EA
	HitAttemptOnMe            Opcode = 0x1116
	HitOnMe                   Opcode = 0x1115
	HurtCollidingActor        Opcode = 0x11A5
	HurtStandingActor         Opcode = 0x1135
	IsWerewolf                Opcode = 0x11B5
	Journal                   Opcode = 0x10CC
	Lock                      Opcode = 0x1136
	LoopGroup                 Opcode = 0x1015
	LowerRank                 Opcode = 0x10CF
	MenuMode                  Opcode = 0x1020
	MenuTest                  Opcode = 0x1153
	MessageBox                Opcode = 0x1000
	ModAcrobatics             Opcode = 0x1079
	ModAgility                Opcode = 0x102E
	ModAlarm                  Opcode = 0x1107
	ModAlchemy                Opcode = 0x106D
	ModAlteration             Opcode = 0x105E
	ModArmorBonus             Opcode = 0x1178
	ModArmorer                Opcode = 0x1040
	ModAthletics              Opcode = 0x1055
	ModAttackBonus            Opcode = 0x10A4
	ModAxe                    Opcode = 0x104F
	ModBlindness              Opcode = 0x1181
	ModBlock                  Opcode = 0x103D
	ModBluntWeapon            Opcode = 0x1049
	ModCastPenalty            Opcode = 0x117B
	ModChameleon              Opcode = 0x10C5
	ModConjuration            Opcode = 0x1064
	ModCurrentFatigue         Opcode = 0x1134
	ModCurrentHealth          Opcode = 0x1132
	ModCurrentMagicka         Opcode = 0x1133
	ModDefendBonus            Opcode = 0x10A7
	ModDestruction            Opcode = 0x105B
	ModDisposition            Opcode = 0x109A
	ModEnchant                Opcode = 0x1058
	ModEndurance              Opcode = 0x1034
	ModFactionReaction        Opcode = 0x1111
	ModFatigue                Opcode = 0x1094
	ModFight                  Opcode = 0x1101
	ModFlee                   Opcode = 0x1104
	ModFlying                 Opcode = 0x1175
	ModHandToHand             Opcode = 0x108B
	ModHealth                 Opcode = 0x108E
	ModHeavyArmor             Opcode = 0x1046
	ModHello                  Opcode = 0x110A
	ModIllusion               Opcode = 0x1061
	ModIntelligence           Opcode = 0x1028
	ModInvisible              Opcode = 0x1187
	ModLightArmor             Opcode = 0x107C
	ModLongBlade              Opcode = 0x104C
	ModLuck                   Opcode = 0x103A
	ModMagicka                Opcode = 0x1091
	ModMarksman               Opcode = 0x1082
	ModMediumArmor            Opcode = 0x1043
	ModMercantile             Opcode = 0x1085
	ModMysticism              Opcode = 0x1067
	ModParalysis              Opcode = 0x1184
	ModPCCrimeLevel           Opcode = 0x109D
	ModPCFacRep               Opcode = 0x10D9
	ModPCVisionBonus          Opcode = 0x11B2
	ModPersonality            Opcode = 0x1037
	ModRegion                 Opcode = 0x1125
	ModReputation             Opcode = 0x1097
	ModResistBlight           Opcode = 0x10B9
	ModResistCorprus          Opcode = 0x10BC
	ModResistDisease          Opcode = 0x10B6
	ModResistFire             Opcode = 0x10AD
	ModResistFrost            Opcode = 0x10B0
	ModResistMagicka          Opcode = 0x10AA
	ModResistNormalWeapons    Opcode = 0x10C8
	ModResistParalysis        Opcode = 0x10C2
	ModResistPoison           Opcode = 0x10BF
	ModResistShock            Opcode = 0x10B3
	ModRestoration            Opcode = 0x106A
	ModScale                  Opcode = 0x118F
	ModSecurity               Opcode = 0x1073
	ModShortBlade             Opcode = 0x107F
	ModSilence                Opcode = 0x117E
	ModSneak                  Opcode = 0x1076
	ModSpear                  Opcode = 0x1052
	ModSpeechcraft            Opcode = 0x1088
	ModSpeed                  Opcode = 0x1031
	ModStrength               Opcode = 0x1025
	ModSuperJump              Opcode = 0x1172
	ModSwimSpeed              Opcode = 0x116F
	ModUnarmored              Opcode = 0x1070
	ModWaterBreathing         Opcode = 0x1169
	ModWaterLevel             Opcode = 0x1192
	ModWaterWalking           Opcode = 0x116C
	ModWillpower              Opcode = 0x102B
	Move                      Opcode = 0x1006
	MoveWorld                 Opcode = 0x1008
	OnActivate                Opcode = 0x1018
	OnDeath                   Opcode = 0x10F0
	OnKnockout                Opcode = 0x10F1
	OnMurder                  Opcode = 0x10F2
	PayFine                   Opcode = 0x114F
	PayFineThief              Opcode = 0x1189
	PCClearExpelled           Opcode = 0x10D3
	PCExpell                  Opcode = 0x10D2
	PCExpelled                Opcode = 0x109F
	PCForce1stPerson          Opcode = 0x113D
	PCForce3rdPerson          Opcode = 0x113C
	PCGet3rdPerson            Opcode = 0x113E
	PCJoinFaction             Opcode = 0x113B
	PCLowerRank               Opcode = 0x10D1
	PCRaiseRank               Opcode = 0x10D0
	PlaceAtMe                 Opcode = 0x11BA
	PlaceAtPC                 Opcode = 0x10E6
	PlaceItem                 Opcode = 0x1195
	PlaceItemCell             Opcode = 0x1196
	PlayBink                  Opcode = 0x1155
	PlayGroup                 Opcode = 0x1014
	PlayLoopSound3D           Opcode = 0x112E
	PlayLoopSound3DVP         Opcode = 0x112F
	PlaySound                 Opcode = 0x1002
	PlaySound3D               Opcode = 0x112C
	PlaySound3DVP             Opcode = 0x112D
	PlaySoundVP               Opcode = 0x112B
	Position                  Opcode = 0x1004
	PositionCell              Opcode = 0x1005
	RaiseRank                 Opcode = 0x10CE
	Random                    Opcode = 0x1021
	RemoveEffects             Opcode = 0x1122
	RemoveFromLevCreature     Opcode = 0x11A7
	RemoveFromLevItem         Opcode = 0x11A9
	RemoveItem                Opcode = 0x10D5
	RemoveSoulGem             Opcode = 0x10EC
	RemoveSpell               Opcode = 0x111E
	RemoveSpellEffects        Opcode = 0x1120
	RepairedOnMe              Opcode = 0x110F
	Resurrect                 Opcode = 0x10E7
	Rotate                    Opcode = 0x1007
	RotateWorld               Opcode = 0x1009
	SameFaction               Opcode = 0x109E
	Say                       Opcode = 0x111B
	SayDone                   Opcode = 0x111C
	ScriptRunning             Opcode = 0x101D
	SetAcrobatics             Opcode = 0x1078
	SetAgility                Opcode = 0x102D
	SetAlarm                  Opcode = 0x1106
	SetAlchemy                Opcode = 0x106C
	SetAlteration             Opcode = 0x105D
	SetAngle                  Opcode = 0x100D
	SetArmorBonus             Opcode = 0x1177
	SetArmorer                Opcode = 0x103F
	SetAthletics              Opcode = 0x1054
	SetAtStart                Opcode = 0x1010
	SetAttackBonus            Opcode = 0x10A3
	SetAxe                    Opcode = 0x104E
	SetBlindness              Opcode = 0x1180
	SetBlock                  Opcode = 0x103C
	SetBluntWeapon            Opcode = 0x1048
	SetCastPenalty            Opcode = 0x117A
	SetChameleon              Opcode = 0x10C4
	SetConjuration            Opcode = 0x1063
	SetDefendBonus            Opcode = 0x10A6
	SetDelete                 Opcode = 0x11AB
	SetDestruction            Opcode = 0x105A
	SetDisposition            Opcode = 0x1099
	SetEnchant                Opcode = 0x1057
	SetEndurance              Opcode = 0x1033
	SetFactionReaction        Opcode = 0x1110
	SetFatigue                Opcode = 0x1093
	SetFight                  Opcode = 0x1100
	SetFlee                   Opcode = 0x1103
	SetFlying                 Opcode = 0x1174
	SetHandToHand             Opcode = 0x108A
	SetHealth                 Opcode = 0x108D
	SetHeavyArmor             Opcode = 0x1045
	SetHello                  Opcode = 0x1109
	SetIllusion               Opcode = 0x1060
	SetIntelligence           Opcode = 0x1027
	SetInvisible              Opcode = 0x1186
	SetJournalIndex           Opcode = 0x112A
	SetLevel                  Opcode = 0x1156
	SetLightArmor             Opcode = 0x107B
	SetLongBlade              Opcode = 0x104B
	SetLuck                   Opcode = 0x1039
	SetMagicka                Opcode = 0x1090
	SetMarksman               Opcode = 0x1081
	SetMediumArmor            Opcode = 0x1042
	SetMercantile             Opcode = 0x1084
	SetMysticism              Opcode = 0x1066
	SetParalysis              Opcode = 0x1183
	SetPCCrimeLevel           Opcode = 0x109C
	SetPCFacRep               Opcode = 0x10D8
	SetPCVisionBonus          Opcode = 0x11B1
	SetPersonality            Opcode = 0x1036
	SetPos                    Opcode = 0x100B
	SetReputation             Opcode = 0x1096
	SetResistBlight           Opcode = 0x10B8
	SetResistCorprus          Opcode = 0x10BB
	SetResistDisease          Opcode = 0x10B5
	SetResistFire             Opcode = 0x10AC
	SetResistFrost            Opcode = 0x10AF
	SetResistMagicka          Opcode = 0x10A9
	SetResistNormalWeapons    Opcode = 0x10C7
	SetResistParalysis        Opcode = 0x10C1
	SetResistPoison           Opcode = 0x10BE
	SetResistShock            Opcode = 0x10B2
	SetRestoration            Opcode = 0x1069
	SetScale                  Opcode = 0x118E
	SetSecurity               Opcode = 0x1072
	SetShortBlade             Opcode = 0x107E
	SetSilence                Opcode = 0x117D
	SetSneak                  Opcode = 0x1075
	SetSpear                  Opcode = 0x1051
	SetSpeechcraft            Opcode = 0x1087
	SetSpeed                  Opcode = 0x1030
	SetStrength               Opcode = 0x1024
	SetSuperJump              Opcode = 0x1171
	SetSwimSpeed              Opcode = 0x116E
	SetUnarmored              Opcode = 0x106F
	SetWaterBreathing         Opcode = 0x1168
	SetWaterLevel             Opcode = 0x1191
	SetWaterWalking           Opcode = 0x116B
	SetWerewolfAcrobatics     Opcode = 0x11B9
	SetWillpower              Opcode = 0x102A
	ShowMap                   Opcode = 0x1152
	ShowRestMenu              Opcode = 0x10E5
	SkipAnim                  Opcode = 0x1016
	StartCombat               Opcode = 0x1019
	StartScript               Opcode = 0x101B
	StopCombat                Opcode = 0x101A
	StopScript                Opcode = 0x101C
	StopSound                 Opcode = 0x1151
	StreamMusic               Opcode = 0x1003
	TurnMoonRed               Opcode = 0x11B7
	TurnMoonWhite             Opcode = 0x11B8
	UndoWerewolf              Opcode = 0x11B4
	Unlock                    Opcode = 0x1137
	WakeUpPC                  Opcode = 0x10E1
	XBox                      Opcode = 0x113A
)

// GetLOS is the short spelling of GetLineOfSight.
const GetLOS = GetLineOfSight

var opcodeNames = map[Opcode]string{
	End:                       "End",
	Set:                       "Set",
	If:                        "If",
	ElseIf:                    "ElseIf",
	Else:                      "Else",
	EndIf:                     "EndIf",
	While:                     "While",
	EndWhile:                  "EndWhile",
	Qualifier:                 "Qualifier",
	Return:                    "Return",
	Activate:                  "Activate",
	AddItem:                   "AddItem",
	AddSoulGem:                "AddSoulGem",
	AddSpell:                  "AddSpell",
	AddToLevCreature:          "AddToLevCreature",
	AddToLevItem:              "AddToLevItem",
	AddTopic:                  "AddTopic",
	AIActivate:                "AIActivate",
	AIEscort:                  "AIEscort",
	AIEscortCell:              "AIEscortCell",
	AIFollow:                  "AIFollow",
	AIFollowCell:              "AIFollowCell",
	AITravel:                  "AITravel",
	AIWander:                  "AIWander",
	BecomeWerewolf:            "BecomeWerewolf",
	Cast:                      "Cast",
	CellChanged:               "CellChanged",
	CellUpdate:                "CellUpdate",
	ChangeWeather:             "ChangeWeather",
	Choice:                    "Choice",
	ClearForceJump:            "ClearForceJump",
	ClearForceMoveJump:        "ClearForceMoveJump",
	ClearForceRun:             "ClearForceRun",
	ClearForceSneak:           "ClearForceSneak",
	ClearInfoActor:            "ClearInfoActor",
	Disable:                   "Disable",
	DisableLevitation:         "DisableLevitation",
	DisablePlayerControls:     "DisablePlayerControls",
	DisablePlayerFighting:     "DisablePlayerFighting",
	DisablePlayerJumping:      "DisablePlayerJumping",
	DisablePlayerLooking:      "DisablePlayerLooking",
	DisablePlayerMagic:        "DisablePlayerMagic",
	DisablePlayerViewSwitch:   "DisablePlayerViewSwitch",
	DisableTeleporting:        "DisableTeleporting",
	DisableVanityMode:         "DisableVanityMode",
	DontSaveObject:            "DontSaveObject",
	Drop:                      "Drop",
	DropSoulGem:               "DropSoulGem",
	Enable:                    "Enable",
	EnableBirthMenu:           "EnableBirthMenu",
	EnableClassMenu:           "EnableClassMenu",
	EnableInventoryMenu:       "EnableInventoryMenu",
	EnableLevelUpMenu:         "EnableLevelUpMenu",
	EnableLevitation:          "EnableLevitation",
	EnableMagicMenu:           "EnableMagicMenu",
	EnableMapMenu:             "EnableMapMenu",
	EnableNameMenu:            "EnableNameMenu",
	EnablePlayerControls:      "EnablePlayerControls",
	EnablePlayerFighting:      "EnablePlayerFighting",
	EnablePlayerJumping:       "EnablePlayerJumping",
	EnablePlayerLooking:       "EnablePlayerLooking",
	EnablePlayerMagic:         "EnablePlayerMagic",
	EnablePlayerViewSwitch:    "EnablePlayerViewSwitch",
	EnableRaceMenu:            "EnableRaceMenu",
	EnableRest:                "EnableRest",
	EnableStatReviewMenu:      "EnableStatReviewMenu",
	EnableStatsMenu:           "EnableStatsMenu",
	EnableTeleporting:         "EnableTeleporting",
	EnableVanityMode:          "EnableVanityMode",
	Equip:                     "Equip",
	ExplodeSpell:              "ExplodeSpell",
	Face:                      "Face",
	FadeIn:                    "FadeIn",
	FadeOut:                   "FadeOut",
	FadeTo:                    "FadeTo",
	Fall:                      "Fall",
	FillMap:                   "FillMap",
	FixMe:                     "FixMe",
	ForceGreeting:             "ForceGreeting",
	ForceJump:                 "ForceJump",
	ForceMoveJump:             "ForceMoveJump",
	ForceRun:                  "ForceRun",
	ForceSneak:                "ForceSneak",
	GetAcrobatics:             "GetAcrobatics",
	GetAgility:                "GetAgility",
	GetAIPackageDone:          "GetAIPackageDone",
	GetAlarm:                  "GetAlarm",
	GetAlchemy:                "GetAlchemy",
	GetAlteration:             "GetAlteration",
	GetAngle:                  "GetAngle",
	GetArmorBonus:             "GetArmorBonus",
	GetArmorer:                "GetArmorer",
	GetArmorType:              "GetArmorType",
	GetAthletics:              "GetAthletics",
	GetAttackBonus:            "GetAttackBonus",
	GetAttacked:               "GetAttacked",
	GetAxe:                    "GetAxe",
	GetBlightDisease:          "GetBlightDisease",
	GetBlindness:              "GetBlindness",
	GetBlock:                  "GetBlock",
	GetBluntWeapon:            "GetBluntWeapon",
	GetButtonPressed:          "GetButtonPressed",
	GetCastPenalty:            "GetCastPenalty",
	GetChameleon:              "GetChameleon",
	GetCollidingActor:         "GetCollidingActor",
	GetCollidingPC:            "GetCollidingPC",
	GetCommonDisease:          "GetCommonDisease",
	GetConjuration:            "GetConjuration",
	GetCurrentAIPackage:       "GetCurrentAIPackage",
	GetCurrentTime:            "GetCurrentTime",
	GetCurrentWeather:         "GetCurrentWeather",
	GetDeathCount:             "GetDeathCount",
	GetDefendBonus:            "GetDefendBonus",
	GetDestruction:            "GetDestruction",
	GetDetected:               "GetDetected",
	GetDisabled:               "GetDisabled",
	GetDisposition:            "GetDisposition",
	GetDistance:               "GetDistance",
	GetEffect:                 "GetEffect",
	GetEnchant:                "GetEnchant",
	GetEndurance:              "GetEndurance",
	GetFatigue:                "GetFatigue",
	GetFight:                  "GetFight",
	GetFlee:                   "GetFlee",
	GetFlying:                 "GetFlying",
	GetForceJump:              "GetForceJump",
	GetForceMoveJump:          "GetForceMoveJump",
	GetForceRun:               "GetForceRun",
	GetForceSneak:             "GetForceSneak",
	GetHandToHand:             "GetHandToHand",
	GetHealth:                 "GetHealth",
	GetHealthGetRatio:         "GetHealthGetRatio",
	GetHeavyArmor:             "GetHeavyArmor",
	GetHello:                  "GetHello",
	GetIllusion:               "GetIllusion",
	GetIntelligence:           "GetIntelligence",
	GetInterior:               "GetInterior",
	GetInvisible:              "GetInvisible",
	GetItemCount:              "GetItemCount",
	GetJournalIndex:           "GetJournalIndex",
	GetLevel:                  "GetLevel",
	GetLightArmor:             "GetLightArmor",
	GetLineOfSight:            "GetLineOfSight",
	GetLocked:                 "GetLocked",
	GetLongBlade:              "GetLongBlade",
	GetLuck:                   "GetLuck",
	GetMagicka:                "GetMagicka",
	GetMarksman:               "GetMarksman",
	GetMasserPhase:            "GetMasserPhase",
	GetMediumArmor:            "GetMediumArmor",
	GetMercantile:             "GetMercantile",
	GetMysticism:              "GetMysticism",
	GetParalysis:              "GetParalysis",
	GetPCCell:                 "GetPCCell",
	GetPCCrimeLevel:           "GetPCCrimeLevel",
	GetPCFacRep:               "GetPCFacRep",
	GetPCInJail:               "GetPCInJail",
	GetPCJumping:              "GetPCJumping",
	GetPCRank:                 "GetPCRank",
	GetPCRunning:              "GetPCRunning",
	GetPCSleep:                "GetPCSleep",
	GetPCSneaking:             "GetPCSneaking",
	GetPCTraveling:            "GetPCTraveling",
	GetPCVisionBonus:          "GetPCVisionBonus",
	GetPersonality:            "GetPersonality",
	GetPlayerControlsDisabled: "GetPlayerControlsDisabled",
	GetPlayerFightingDisabled: "GetPlayerFightingDisabled",
	GetPlayerJumpingDisabled:  "GetPlayerJumpingDisabled",
	GetPlayerLookingDisabled:  "GetPlayerLookingDisabled",
	GetPlayerMagicDisabled:    "GetPlayerMagicDisabled",
	GetPos:                    "GetPos",
	GetRace:                   "GetRace",
	GetReputation:             "GetReputation",
	GetResistBlight:           "GetResistBlight",
	GetResistCorprus:          "GetResistCorprus",
	GetResistDisease:          "GetResistDisease",
	GetResistFire:             "GetResistFire",
	GetResistFrost:            "GetResistFrost",
	GetResistMagicka:          "GetResistMagicka",
	GetResistNormalWeapons:    "GetResistNormalWeapons",
	GetResistParalysis:        "GetResistParalysis",
	GetResistPoison:           "GetResistPoison",
	GetResistShock:            "GetResistShock",
	GetRestoration:            "GetRestoration",
	GetScale:                  "GetScale",
	GetSecondsPassed:          "GetSecondsPassed",
	GetSecundaPhase:           "GetSecundaPhase",
	GetSecurity:               "GetSecurity",
	GetShortBlade:             "GetShortBlade",
	GetSilence:                "GetSilence",
	GetSneak:                  "GetSneak",
	GetSoundPlaying:           "GetSoundPlaying",
	GetSpear:                  "GetSpear",
	GetSpeechcraft:            "GetSpeechcraft",
	GetSpeed:                  "GetSpeed",
	GetSpell:                  "GetSpell",
	GetSpellEffects:           "GetSpellEffects",
	GetSpellReadied:           "GetSpellReadied",
	GetSquareRoot:             "GetSquareRoot",
	GetStandingActor:          "GetStandingActor",
	GetStandingPC:             "GetStandingPC",
	GetStartingAngle:          "GetStartingAngle",
	GetStartingPos:            "GetStartingPos",
	GetStrength:               "GetStrength",
	GetSuperJump:              "GetSuperJump",
	GetSwimSpeed:              "GetSwimSpeed",
	GetTarget:                 "GetTarget",
	GetUnarmored:              "GetUnarmored",
	GetVanityModeDisabled:     "GetVanityModeDisabled",
	GetWaterBreathing:         "GetWaterBreathing",
	GetWaterLevel:             "GetWaterLevel",
	GetWaterWalking:           "GetWaterWalking",
	GetWeaponDrawn:            "GetWeaponDrawn",
	GetWeaponType:             "GetWeaponType",
	GetWerewolfKills:          "GetWerewolfKills",
	GetWillpower:              "GetWillpower",
	GetWindSpeed:              "GetWindSpeed",
	Goodbye:                   "Goodbye",
	GotoJail:                  "GotoJail",
	HasItemEquipped:           "HasItemEquipped",
	HasSoulgem:                "HasSoulgem",
	HitAttemptOnMe:            "HitAttemptOnMe",
	HitOnMe:                   "HitOnMe",
	HurtCollidingActor:        "HurtCollidingActor",
	HurtStandingActor:         "HurtStandingActor",
	IsWerewolf:                "IsWerewolf",
	Journal:                   "Journal",
	Lock:                      "Lock",
	LoopGroup:                 "LoopGroup",
	LowerRank:                 "LowerRank",
	MenuMode:                  "MenuMode",
	MenuTest:                  "MenuTest",
	MessageBox:                "MessageBox",
	ModAcrobatics:             "ModAcrobatics",
	ModAgility:                "ModAgility",
	ModAlarm:                  "ModAlarm",
	ModAlchemy:                "ModAlchemy",
	ModAlteration:             "ModAlteration",
	ModArmorBonus:             "ModArmorBonus",
	ModArmorer:                "ModArmorer",
	ModAthletics:              "ModAthletics",
	ModAttackBonus:            "ModAttackBonus",
	ModAxe:                    "ModAxe",
	ModBlindness:              "ModBlindness",
	ModBlock:                  "ModBlock",
	ModBluntWeapon:            "ModBluntWeapon",
	ModCastPenalty:            "ModCastPenalty",
	ModChameleon:              "ModChameleon",
	ModConjuration:            "ModConjuration",
	ModCurrentFatigue:         "ModCurrentFatigue",
	ModCurrentHealth:          "ModCurrentHealth",
	ModCurrentMagicka:         "ModCurrentMagicka",
	ModDefendBonus:            "ModDefendBonus",
	ModDestruction:            "ModDestruction",
	ModDisposition:            "ModDisposition",
	ModEnchant:                "ModEnchant",
	ModEndurance:              "ModEndurance",
	ModFactionReaction:        "ModFactionReaction",
	ModFatigue:                "ModFatigue",
	ModFight:                  "ModFight",
	ModFlee:                   "ModFlee",
	ModFlying:                 "ModFlying",
	ModHandToHand:             "ModHandToHand",
	ModHealth:                 "ModHealth",
	ModHeavyArmor:             "ModHeavyArmor",
	ModHello:                  "ModHello",
	ModIllusion:               "ModIllusion",
	ModIntelligence:           "ModIntelligence",
	ModInvisible:              "ModInvisible",
	ModLightArmor:             "ModLightArmor",
	ModLongBlade:              "ModLongBlade",
	ModLuck:                   "ModLuck",
	ModMagicka:                "ModMagicka",
	ModMarksman:               "ModMarksman",
	ModMediumArmor:            "ModMediumArmor",
	ModMercantile:             "ModMercantile",
	ModMysticism:              "ModMysticism",
	ModParalysis:              "ModParalysis",
	ModPCCrimeLevel:           "ModPCCrimeLevel",
	ModPCFacRep:               "ModPCFacRep",
	ModPCVisionBonus:          "ModPCVisionBonus",
	ModPersonality:            "ModPersonality",
	ModRegion:                 "ModRegion",
	ModReputation:             "ModReputation",
	ModResistBlight:           "ModResistBlight",
	ModResistCorprus:          "ModResistCorprus",
	ModResistDisease:          "ModResistDisease",
	ModResistFire:             "ModResistFire",
	ModResistFrost:            "ModResistFrost",
	ModResistMagicka:          "ModResistMagicka",
	ModResistNormalWeapons:    "ModResistNormalWeapons",
	ModResistParalysis:        "ModResistParalysis",
	ModResistPoison:           "ModResistPoison",
	ModResistShock:            "ModResistShock",
	ModRestoration:            "ModRestoration",
	ModScale:                  "ModScale",
	ModSecurity:               "ModSecurity",
	ModShortBlade:             "ModShortBlade",
	ModSilence:                "ModSilence",
	ModSneak:                  "ModSneak",
	ModSpear:                  "ModSpear",
	ModSpeechcraft:            "ModSpeechcraft",
	ModSpeed:                  "ModSpeed",
	ModStrength:               "ModStrength",
	ModSuperJump:              "ModSuperJump",
	ModSwimSpeed:              "ModSwimSpeed",
	ModUnarmored:              "ModUnarmored",
	ModWaterBreathing:         "ModWaterBreathing",
	ModWaterLevel:             "ModWaterLevel",
	ModWaterWalking:           "ModWaterWalking",
	ModWillpower:              "ModWillpower",
	Move:                      "Move",
	MoveWorld:                 "MoveWorld",
	OnActivate:                "OnActivate",
	OnDeath:                   "OnDeath",
	OnKnockout:                "OnKnockout",
	OnMurder:                  "OnMurder",
	PayFine:                   "PayFine",
	PayFineThief:              "PayFineThief",
	PCClearExpelled:           "PCClearExpelled",
	PCExpell:                  "PCExpell",
	PCExpelled:                "PCExpelled",
	PCForce1stPerson:          "PCForce1stPerson",
	PCForce3rdPerson:          "PCForce3rdPerson",
	PCGet3rdPerson:            "PCGet3rdPerson",
	PCJoinFaction:             "PCJoinFaction",
	PCLowerRank:               "PCLowerRank",
	PCRaiseRank:               "PCRaiseRank",
	PlaceAtMe:                 "PlaceAtMe",
	PlaceAtPC:                 "PlaceAtPC",
	PlaceItem:                 "PlaceItem",
	PlaceItemCell:             "PlaceItemCell",
	PlayBink:                  "PlayBink",
	PlayGroup:                 "PlayGroup",
	PlayLoopSound3D:           "PlayLoopSound3D",
	PlayLoopSound3DVP:         "PlayLoopSound3DVP",
	PlaySound:                 "PlaySound",
	PlaySound3D:               "PlaySound3D",
	PlaySound3DVP:             "PlaySound3DVP",
	PlaySoundVP:               "PlaySoundVP",
	Position:                  "Position",
	PositionCell:              "PositionCell",
	RaiseRank:                 "RaiseRank",
	Random:                    "Random",
	RemoveEffects:             "RemoveEffects",
	RemoveFromLevCreature:     "RemoveFromLevCreature",
	RemoveFromLevItem:         "RemoveFromLevItem",
	RemoveItem:                "RemoveItem",
	RemoveSoulGem:             "RemoveSoulGem",
	RemoveSpell:               "RemoveSpell",
	RemoveSpellEffects:        "RemoveSpellEffects",
	RepairedOnMe:              "RepairedOnMe",
	Resurrect:                 "Resurrect",
	Rotate:                    "Rotate",
	RotateWorld:               "RotateWorld",
	SameFaction:               "SameFaction",
	Say:                       "Say",
	SayDone:                   "SayDone",
	ScriptRunning:             "ScriptRunning",
	SetAcrobatics:             "SetAcrobatics",
	SetAgility:                "SetAgility",
	SetAlarm:                  "SetAlarm",
	SetAlchemy:                "SetAlchemy",
	SetAlteration:             "SetAlteration",
	SetAngle:                  "SetAngle",
	SetArmorBonus:             "SetArmorBonus",
	SetArmorer:                "SetArmorer",
	SetAthletics:              "SetAthletics",
	SetAtStart:                "SetAtStart",
	SetAttackBonus:            "SetAttackBonus",
	SetAxe:                    "SetAxe",
	SetBlindness:              "SetBlindness",
	SetBlock:                  "SetBlock",
	SetBluntWeapon:            "SetBluntWeapon",
	SetCastPenalty:            "SetCastPenalty",
	SetChameleon:              "SetChameleon",
	SetConjuration:            "SetConjuration",
	SetDefendBonus:            "SetDefendBonus",
	SetDelete:                 "SetDelete",
	SetDestruction:            "SetDestruction",
	SetDisposition:            "SetDisposition",
	SetEnchant:                "SetEnchant",
	SetEndurance:              "SetEndurance",
	SetFactionReaction:        "SetFactionReaction",
	SetFatigue:                "SetFatigue",
	SetFight:                  "SetFight",
	SetFlee:                   "SetFlee",
	SetFlying:                 "SetFlying",
	SetHandToHand:             "SetHandToHand",
	SetHealth:                 "SetHealth",
	SetHeavyArmor:             "SetHeavyArmor",
	SetHello:                  "SetHello",
	SetIllusion:               "SetIllusion",
	SetIntelligence:           "SetIntelligence",
	SetInvisible:              "SetInvisible",
	SetJournalIndex:           "SetJournalIndex",
	SetLevel:                  "SetLevel",
	SetLightArmor:             "SetLightArmor",
	SetLongBlade:              "SetLongBlade",
	SetLuck:                   "SetLuck",
	SetMagicka:                "SetMagicka",
	SetMarksman:               "SetMarksman",
	SetMediumArmor:            "SetMediumArmor",
	SetMercantile:             "SetMercantile",
	SetMysticism:              "SetMysticism",
	SetParalysis:              "SetParalysis",
	SetPCCrimeLevel:           "SetPCCrimeLevel",
	SetPCFacRep:               "SetPCFacRep",
	SetPCVisionBonus:          "SetPCVisionBonus",
	SetPersonality:            "SetPersonality",
	SetPos:                    "SetPos",
	SetReputation:             "SetReputation",
	SetResistBlight:           "SetResistBlight",
	SetResistCorprus:          "SetResistCorprus",
	SetResistDisease:          "SetResistDisease",
	SetResistFire:             "SetResistFire",
	SetResistFrost:            "SetResistFrost",
	SetResistMagicka:          "SetResistMagicka",
	SetResistNormalWeapons:    "SetResistNormalWeapons",
	SetResistParalysis:        "SetResistParalysis",
	SetResistPoison:           "SetResistPoison",
	SetResistShock:            "SetResistShock",
	SetRestoration:            "SetRestoration",
	SetScale:                  "SetScale",
	SetSecurity:               "SetSecurity",
	SetShortBlade:             "SetShortBlade",
	SetSilence:                "SetSilence",
	SetSneak:                  "SetSneak",
	SetSpear:                  "SetSpear",
	SetSpeechcraft:            "SetSpeechcraft",
	SetSpeed:                  "SetSpeed",
	SetStrength:               "SetStrength",
	SetSuperJump:              "SetSuperJump",
	SetSwimSpeed:              "SetSwimSpeed",
	SetUnarmored:              "SetUnarmored",
	SetWaterBreathing:         "SetWaterBreathing",
	SetWaterLevel:             "SetWaterLevel",
	SetWaterWalking:           "SetWaterWalking",
	SetWerewolfAcrobatics:     "SetWerewolfAcrobatics",
	SetWillpower:              "SetWillpower",
	ShowMap:                   "ShowMap",
	ShowRestMenu:              "ShowRestMenu",
	SkipAnim:                  "SkipAnim",
	StartCombat:               "StartCombat",
	StartScript:               "StartScript",
	StopCombat:                "StopCombat",
	StopScript:                "StopScript",
	StopSound:                 "StopSound",
	StreamMusic:               "StreamMusic",
	TurnMoonRed:               "TurnMoonRed",
	TurnMoonWhite:             "TurnMoonWhite",
	UndoWerewolf:              "UndoWerewolf",
	Unlock:                    "Unlock",
	WakeUpPC:                  "WakeUpPC",
	XBox:                      "XBox",
}

// String returns the command name of the opcode.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%04X)", uint16(op))
}

// Known reports whether op is one of the defined codes.
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}
