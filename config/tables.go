// SPDX-License-Identifier: EPL-2.0

package config

import (
	"github.com/ik5/audcore/announce"
	"github.com/ik5/audcore/cooldown"
	"github.com/ik5/audcore/scheduler"
)

// Gameplay audio events.
const (
	DamageSmall cooldown.Category = iota + 1
	DamageLarge
	ExplosionSmall
	ExplosionLarge
	WeaponFire
	ProjectileImpact

	UnitSelect
	UnitMoveOrder
	UnitAttackOrder
	UnitAcknowledge
	UnitDeath
	UnitCreated

	BuildingPlaced
	BuildingComplete
	BuildingSold
	BuildingDestroyed
	BuildingCaptured

	UIClick
	UIBuildClick
	UITabClick
	UISidebarUp
	UISidebarDown
	UICannot
	UIPrimarySet

	AmbientMovement
)

// Announcer voices.
const (
	VoiceBuilding announce.Voice = iota + 1
	VoiceConstructionComplete
	VoiceOnHold
	VoiceCancelled
	VoiceNewOptions
	VoiceTraining
	VoiceUnitReady
	VoiceUnitLost
	VoiceReinforcements
	VoiceBaseAttack
	VoicePrimaryBuilding
	VoiceBuildingCaptured
	VoiceBuildingLost
	VoiceLowPower
	VoicePowerRestored
	VoiceInsufficientFunds
	VoiceOreDepleted
	VoiceSilosNeeded
	VoiceRadarOnline
	VoiceRadarOffline
	VoiceIronCurtainReady
	VoiceIronCurtainCharging
	VoiceChronosphereReady
	VoiceChronosphereCharging
	VoiceNukeReady
	VoiceNukeLaunched
	VoiceNukeAttack
	VoiceGPSReady
	VoiceParabombsReady
	VoiceSpyPlaneReady
	VoiceMissionAccomplished
	VoiceMissionFailed
	VoiceBattleControlOnline
	VoiceBattleControlTerminated
	VoicePlayerDefeated
	VoiceAllyAttack
)

var events = map[string]cooldown.Category{
	"damage_small":       DamageSmall,
	"damage_large":       DamageLarge,
	"explosion_small":    ExplosionSmall,
	"explosion_large":    ExplosionLarge,
	"weapon_fire":        WeaponFire,
	"projectile_impact":  ProjectileImpact,
	"unit_select":        UnitSelect,
	"unit_move_order":    UnitMoveOrder,
	"unit_attack_order":  UnitAttackOrder,
	"unit_acknowledge":   UnitAcknowledge,
	"unit_death":         UnitDeath,
	"unit_created":       UnitCreated,
	"building_placed":    BuildingPlaced,
	"building_complete":  BuildingComplete,
	"building_sold":      BuildingSold,
	"building_destroyed": BuildingDestroyed,
	"building_captured":  BuildingCaptured,
	"ui_click":           UIClick,
	"ui_build_click":     UIBuildClick,
	"ui_tab_click":       UITabClick,
	"ui_sidebar_up":      UISidebarUp,
	"ui_sidebar_down":    UISidebarDown,
	"ui_cannot":          UICannot,
	"ui_primary_set":     UIPrimarySet,
	"ambient_movement":   AmbientMovement,
}

var voices = map[string]announce.Voice{
	"building":                  VoiceBuilding,
	"construction_complete":     VoiceConstructionComplete,
	"on_hold":                   VoiceOnHold,
	"cancelled":                 VoiceCancelled,
	"new_options":               VoiceNewOptions,
	"training":                  VoiceTraining,
	"unit_ready":                VoiceUnitReady,
	"unit_lost":                 VoiceUnitLost,
	"reinforcements":            VoiceReinforcements,
	"base_attack":               VoiceBaseAttack,
	"primary_building":          VoicePrimaryBuilding,
	"building_captured":         VoiceBuildingCaptured,
	"building_lost":             VoiceBuildingLost,
	"low_power":                 VoiceLowPower,
	"power_restored":            VoicePowerRestored,
	"insufficient_funds":        VoiceInsufficientFunds,
	"ore_depleted":              VoiceOreDepleted,
	"silos_needed":              VoiceSilosNeeded,
	"radar_online":              VoiceRadarOnline,
	"radar_offline":             VoiceRadarOffline,
	"iron_curtain_ready":        VoiceIronCurtainReady,
	"iron_curtain_charging":     VoiceIronCurtainCharging,
	"chronosphere_ready":        VoiceChronosphereReady,
	"chronosphere_charging":     VoiceChronosphereCharging,
	"nuke_ready":                VoiceNukeReady,
	"nuke_launched":             VoiceNukeLaunched,
	"nuke_attack":               VoiceNukeAttack,
	"gps_ready":                 VoiceGPSReady,
	"parabombs_ready":           VoiceParabombsReady,
	"spy_plane_ready":           VoiceSpyPlaneReady,
	"mission_accomplished":      VoiceMissionAccomplished,
	"mission_failed":            VoiceMissionFailed,
	"battle_control_online":     VoiceBattleControlOnline,
	"battle_control_terminated": VoiceBattleControlTerminated,
	"player_defeated":           VoicePlayerDefeated,
	"ally_attack":               VoiceAllyAttack,
}

// Event looks up an event by its configuration name.
func Event(name string) (cooldown.Category, bool) {
	c, ok := events[name]
	return c, ok
}

// VoiceByName looks up an announcer voice by its configuration name.
func VoiceByName(name string) (announce.Voice, bool) {
	v, ok := voices[name]
	return v, ok
}

func defaultEvents() map[string]Category {
	return map[string]Category{
		"damage_small":       {Clip: "XPLOSML.AUD", GlobalMs: 50, PositionMs: 150, Priority: 150, MaxConcurrent: 4, Volume: 0.8, Mix: "combat"},
		"damage_large":       {Clip: "XPLOMED.AUD", GlobalMs: 100, PositionMs: 200, Priority: 170, MaxConcurrent: 3, Volume: 1.0, Mix: "combat"},
		"explosion_small":    {Clip: "XPLOS.AUD", GlobalMs: 50, PositionMs: 150, Priority: 160, MaxConcurrent: 4, Volume: 0.9, Mix: "combat"},
		"explosion_large":    {Clip: "XPLOBIG.AUD", GlobalMs: 100, PositionMs: 300, Priority: 180, MaxConcurrent: 3, Volume: 1.0, Mix: "combat"},
		"weapon_fire":        {Clip: "GUN1.AUD", GlobalMs: 30, PositionMs: 100, Priority: 130, MaxConcurrent: 4, Volume: 0.7, Mix: "combat"},
		"projectile_impact":  {Clip: "SHELL.AUD", GlobalMs: 50, PositionMs: 100, Priority: 120, MaxConcurrent: 4, Volume: 0.6, Mix: "combat"},
		"unit_select":        {GlobalMs: 100, IdentityMs: 500, Priority: 100, MaxConcurrent: 2, Volume: 1.0, Mix: "unit"},
		"unit_move_order":    {GlobalMs: 150, IdentityMs: 400, Priority: 100, MaxConcurrent: 2, Volume: 1.0, Mix: "unit"},
		"unit_attack_order":  {GlobalMs: 150, IdentityMs: 400, Priority: 100, MaxConcurrent: 2, Volume: 1.0, Mix: "unit"},
		"unit_acknowledge":   {GlobalMs: 200, IdentityMs: 500, Priority: 100, MaxConcurrent: 2, Volume: 1.0, Mix: "unit"},
		"unit_death":         {GlobalMs: 100, PositionMs: 200, Priority: 140, MaxConcurrent: 3, Volume: 0.8, Mix: "combat"},
		"unit_created":       {GlobalMs: 500, Priority: 100, MaxConcurrent: 1, Volume: 0.6, Mix: "unit"},
		"building_placed":    {Clip: "PLACBLDG.AUD", GlobalMs: 200, Priority: 180, MaxConcurrent: 1, Volume: 1.0, Mix: "special"},
		"building_complete":  {GlobalMs: 1000, Priority: 180, MaxConcurrent: 1, Volume: 1.0, Mix: "special"},
		"building_sold":      {Clip: "SOLD.AUD", GlobalMs: 500, Priority: 180, MaxConcurrent: 1, Volume: 1.0, Mix: "special"},
		"building_destroyed": {Clip: "CRUMBLE.AUD", GlobalMs: 300, Priority: 200, MaxConcurrent: 2, Volume: 1.0, Mix: "combat"},
		"building_captured":  {GlobalMs: 500, Priority: 180, MaxConcurrent: 1, Volume: 1.0, Mix: "special"},
		"ui_click":           {Clip: "CLICK.AUD", GlobalMs: 50, Priority: 200, MaxConcurrent: 2, Volume: 1.0, Mix: "ui"},
		"ui_build_click":     {Clip: "CLICK.AUD", GlobalMs: 100, Priority: 200, MaxConcurrent: 2, Volume: 1.0, Mix: "ui"},
		"ui_tab_click":       {Clip: "CLICK.AUD", GlobalMs: 100, Priority: 200, MaxConcurrent: 2, Volume: 1.0, Mix: "ui"},
		"ui_sidebar_up":      {GlobalMs: 100, Priority: 180, MaxConcurrent: 1, Volume: 0.8, Mix: "ui"},
		"ui_sidebar_down":    {GlobalMs: 100, Priority: 180, MaxConcurrent: 1, Volume: 0.8, Mix: "ui"},
		"ui_cannot":          {Clip: "BUZZY1.AUD", GlobalMs: 200, Priority: 220, MaxConcurrent: 1, Volume: 0.9, Mix: "ui"},
		"ui_primary_set":     {Clip: "PRIMARY.AUD", GlobalMs: 200, Priority: 180, MaxConcurrent: 1, Volume: 0.9, Mix: "special"},
		"ambient_movement":   {IdentityMs: 2000, Priority: 60, MaxConcurrent: 4, Volume: 0.4, Mix: "ambient"},
	}
}

func defaultVoices() map[string]Voice {
	return map[string]Voice{
		"building":                  {Clip: "BLDG1.AUD", Priority: 50, MinIntervalMs: 2000},
		"construction_complete":     {Clip: "CONSTRU1.AUD", Priority: 100, MinIntervalMs: 3000},
		"on_hold":                   {Clip: "ONHOLD1.AUD", Priority: 80, MinIntervalMs: 3000},
		"cancelled":                 {Clip: "CANCLD1.AUD", Priority: 80, MinIntervalMs: 2000},
		"new_options":               {Clip: "NEWOPT1.AUD", Priority: 100, MinIntervalMs: 5000},
		"training":                  {Clip: "TRAIN1.AUD", Priority: 50, MinIntervalMs: 2000},
		"unit_ready":                {Clip: "UNITREDY.AUD", Priority: 100, MinIntervalMs: 2000},
		"unit_lost":                 {Clip: "UNITLOST.AUD", Priority: 200, MinIntervalMs: 5000},
		"reinforcements":            {Clip: "REINFOR1.AUD", Priority: 150, MinIntervalMs: 5000},
		"base_attack":               {Clip: "BASEATK1.AUD", Priority: 250, MinIntervalMs: 30000},
		"primary_building":          {Clip: "PRIBLDG1.AUD", Priority: 80, MinIntervalMs: 3000},
		"building_captured":         {Clip: "BLDGCAP1.AUD", Priority: 180, MinIntervalMs: 5000},
		"building_lost":             {Clip: "BLDGLST1.AUD", Priority: 180, MinIntervalMs: 5000},
		"low_power":                 {Clip: "LOWPOWR1.AUD", Priority: 180, MinIntervalMs: 10000},
		"power_restored":            {Clip: "POWRRES1.AUD", Priority: 150, MinIntervalMs: 5000},
		"insufficient_funds":        {Clip: "INSUFUND.AUD", Priority: 150, MinIntervalMs: 5000},
		"ore_depleted":              {Clip: "ABORRONE.AUD", Priority: 120, MinIntervalMs: 10000},
		"silos_needed":              {Clip: "NEEDSILO.AUD", Priority: 150, MinIntervalMs: 10000},
		"radar_online":              {Clip: "RADARON1.AUD", Priority: 100, MinIntervalMs: 5000},
		"radar_offline":             {Clip: "RADAROFF.AUD", Priority: 120, MinIntervalMs: 5000},
		"iron_curtain_ready":        {Clip: "IRONRDY1.AUD", Priority: 200, MinIntervalMs: 30000},
		"iron_curtain_charging":     {Clip: "IRONCHG1.AUD", Priority: 100, MinIntervalMs: 10000},
		"chronosphere_ready":        {Clip: "CHRORDY1.AUD", Priority: 200, MinIntervalMs: 30000},
		"chronosphere_charging":     {Clip: "CHROCHG1.AUD", Priority: 100, MinIntervalMs: 10000},
		"nuke_ready":                {Clip: "NUKESRDY.AUD", Priority: 220, MinIntervalMs: 30000},
		"nuke_launched":             {Clip: "NUKLNCH1.AUD", Priority: 255, MinIntervalMs: 5000},
		"nuke_attack":               {Clip: "NUKEATK1.AUD", Priority: 255, MinIntervalMs: 5000},
		"gps_ready":                 {Clip: "GPSRDY1.AUD", Priority: 180, MinIntervalMs: 30000},
		"parabombs_ready":           {Clip: "PARABRDY.AUD", Priority: 180, MinIntervalMs: 30000},
		"spy_plane_ready":           {Clip: "SPYRDY1.AUD", Priority: 150, MinIntervalMs: 30000},
		"mission_accomplished":      {Clip: "ACCOM1.AUD", Priority: 255},
		"mission_failed":            {Clip: "FAIL1.AUD", Priority: 255},
		"battle_control_online":     {Clip: "BATCON1.AUD", Priority: 200},
		"battle_control_terminated": {Clip: "BATCONT1.AUD", Priority: 200},
		"player_defeated":           {Clip: "PLYDEFT1.AUD", Priority: 200, MinIntervalMs: 5000},
		"ally_attack":               {Clip: "ALLATK1.AUD", Priority: 220, MinIntervalMs: 30000},
	}
}

// Unit acknowledgement lines.
const (
	AckReporting scheduler.UnitVoice = iota + 1
	AckYesSir
	AckReady
	AckAwaitingOrders
	AckAtYourService
	AckAcknowledged
	AckAffirmative

	AckMovingOut
	AckOnMyWay
	AckDoubleTime
	AckYouGotIt
	AckNoProblem
	AckRoger

	AckAttacking
	AckFiring
	AckLetEmHaveIt
	AckForMotherRussia
	AckForKingAndCountry

	AckEngineer
	AckMedic
	AckSpy
	AckTanya
	AckThief

	AckVehicle
	AckTank
	AckHelicopter
	AckBoat
)

var unitVoices = map[string]scheduler.UnitVoice{
	"reporting":            AckReporting,
	"yes_sir":              AckYesSir,
	"ready":                AckReady,
	"awaiting_orders":      AckAwaitingOrders,
	"at_your_service":      AckAtYourService,
	"acknowledged":         AckAcknowledged,
	"affirmative":          AckAffirmative,
	"moving_out":           AckMovingOut,
	"on_my_way":            AckOnMyWay,
	"double_time":          AckDoubleTime,
	"you_got_it":           AckYouGotIt,
	"no_problem":           AckNoProblem,
	"roger":                AckRoger,
	"attacking":            AckAttacking,
	"firing":               AckFiring,
	"let_em_have_it":       AckLetEmHaveIt,
	"for_mother_russia":    AckForMotherRussia,
	"for_king_and_country": AckForKingAndCountry,
	"engineer":             AckEngineer,
	"medic":                AckMedic,
	"spy":                  AckSpy,
	"tanya":                AckTanya,
	"thief":                AckThief,
	"vehicle":              AckVehicle,
	"tank":                 AckTank,
	"helicopter":           AckHelicopter,
	"boat":                 AckBoat,
}

// UnitVoiceByName looks up a unit acknowledgement line by its
// configuration name.
func UnitVoiceByName(name string) (scheduler.UnitVoice, bool) {
	v, ok := unitVoices[name]
	return v, ok
}

// defaultUnitVoices carries the faction clip table. Lines without a
// soviet_clip sound the same for every side.
func defaultUnitVoices() map[string]UnitVoice {
	return map[string]UnitVoice{
		"reporting":            {Clip: "REPORTN1.AUD", MinIntervalMs: 800},
		"yes_sir":              {Clip: "YESSIR1.AUD", MinIntervalMs: 800},
		"ready":                {Clip: "READY1.AUD", MinIntervalMs: 800},
		"awaiting_orders":      {Clip: "AWARONE1.AUD", MinIntervalMs: 800},
		"at_your_service":      {Clip: "ATSERV1.AUD", MinIntervalMs: 800},
		"acknowledged":         {Clip: "ACKNO1.AUD", MinIntervalMs: 800},
		"affirmative":          {Clip: "AFFIRM1.AUD", MinIntervalMs: 800},
		"moving_out":           {Clip: "MOVOUT1.AUD", MinIntervalMs: 600},
		"on_my_way":            {Clip: "ONWAY1.AUD", MinIntervalMs: 600},
		"double_time":          {Clip: "DOUBLE1.AUD", MinIntervalMs: 600},
		"you_got_it":           {Clip: "UGOTIT1.AUD", MinIntervalMs: 600},
		"no_problem":           {Clip: "NODEST1.AUD", MinIntervalMs: 600},
		"roger":                {Clip: "ROGER1.AUD", MinIntervalMs: 600},
		"attacking":            {Clip: "ATACKNG1.AUD", MinIntervalMs: 500},
		"firing":               {Clip: "FIREONE1.AUD", MinIntervalMs: 500},
		"let_em_have_it":       {Clip: "LETEM1.AUD", MinIntervalMs: 500},
		"for_mother_russia":    {Clip: "FORMR1.AUD", SovietClip: "FORMR1.AUD", MinIntervalMs: 500},
		"for_king_and_country": {Clip: "FORKAC1.AUD", MinIntervalMs: 500},
		"engineer":             {Clip: "ENGR1.AUD", MinIntervalMs: 800},
		"medic":                {Clip: "MEDIC1.AUD", MinIntervalMs: 800},
		"spy":                  {Clip: "SPY1.AUD", MinIntervalMs: 800},
		"tanya":                {Clip: "TANYA1.AUD", MinIntervalMs: 800},
		"thief":                {Clip: "THIEF1.AUD", MinIntervalMs: 800},
		"vehicle":              {Clip: "VEHIC1.AUD", MinIntervalMs: 600},
		"tank":                 {Clip: "TANK1.AUD", MinIntervalMs: 600},
		"helicopter":           {Clip: "COPTER1.AUD", MinIntervalMs: 600},
		"boat":                 {Clip: "BOAT1.AUD", MinIntervalMs: 600},
	}
}
