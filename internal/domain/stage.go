package domain

// Stage is the negotiation phase of a conversation. Stages are ordered and a
// conversation only ever moves forward through them.
type Stage string

const (
	StageInitial     Stage = "initial"
	StageNegotiation Stage = "negotiation"
	StageMeeting     Stage = "meeting"
	StageContract    Stage = "contract"
)

// StageOrder lists the stages from lowest to highest.
var StageOrder = []Stage{StageInitial, StageNegotiation, StageMeeting, StageContract}

// Rank is the position of s in StageOrder, or -1 for an unknown stage.
func (s Stage) Rank() int {
	for i, st := range StageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Trigger is an event that may advance a conversation.
type Trigger string

const (
	TriggerAccepted Trigger = "application_accepted"
	TriggerMessage  Trigger = "message"
	TriggerMeeting  Trigger = "meeting"
	TriggerContract Trigger = "contract"
)

var triggerStages = map[Trigger]Stage{
	TriggerAccepted: StageNegotiation,
	TriggerMessage:  StageNegotiation,
	TriggerMeeting:  StageMeeting,
	TriggerContract: StageContract,
}

// TargetStage returns the stage a trigger moves a conversation to.
func (t Trigger) TargetStage() (Stage, bool) {
	s, ok := triggerStages[t]
	return s, ok
}
