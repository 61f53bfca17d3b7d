// Package catalog 은 위젯이 고르는 주제와 관점 목록을 고정된 순서로 보관한다.
// 목록은 프로세스 시작 시점에 한 번 만들어지고 이후 바뀌지 않는다.
package catalog

// Group 은 화면 표시용 주제 묶음이다. 요청 생성에는 영향을 주지 않는다.
type Group struct {
	Theme  string
	Topics []string
}

var groups = [...]Group{
	{
		Theme: "🌏 자연 & 과학",
		Topics: []string{
			"우주와 천문학",
			"심해 생태계",
			"희귀한 동물",
			"곤충의 세계",
			"식물의 생존 전략",
			"날씨와 기상 현상",
			"지질학과 화산",
			"인체 신비",
			"뇌과학과 심리",
			"바이러스와 세균",
			"물리학 법칙",
			"화학 반응",
			"환경 문제와 미래",
			"공룡과 고생물",
			"유전공학",
		},
	},
	{
		Theme: "🏛 역사 & 인문",
		Topics: []string{
			"고대 문명",
			"세계의 전쟁사",
			"역사 속 미스터리",
			"중세 시대 생활상",
			"조선시대 역사",
			"세계의 신화와 전설",
			"철학적 난제",
			"종교의 기원",
			"고전 문학",
			"언어의 역사",
			"세계의 왕실 문화",
			"실크로드와 무역",
			"발명과 발견의 역사",
			"유명한 위인들의 비화",
		},
	},
	{
		Theme: "🎨 문화 & 예술",
		Topics: []string{
			"현대 미술",
			"클래식 음악",
			"재즈와 팝의 역사",
			"영화 제작 비하인드",
			"세계의 건축물",
			"패션의 역사",
			"유명한 명화의 비밀",
			"뮤지컬과 연극",
			"사진 예술",
			"디자인의 역사",
			"세계의 축제",
			"음식의 유래",
			"커피와 차(Tea) 문화",
			"디저트의 역사",
		},
	},
	{
		Theme: "🏙 사회 & 생활",
		Topics: []string{
			"세계의 특이한 법",
			"경제와 주식의 기초",
			"마케팅 심리학",
			"범죄 수사 기법",
			"스포츠 규칙의 유래",
			"올림픽 역사",
			"인터넷과 IT 트렌드",
			"미래 기술(AI, 로봇)",
			"교통수단의 발달",
			"세계의 에티켓",
			"속담과 격언의 유래",
			"색채 심리학",
			"여행지 추천 및 정보",
			"취미 생활 추천",
			"MBTI와 성격 유형",
		},
	},
}

// angles 는 같은 주제라도 다르게 설명하도록 유도하는 서술 지시문이다.
var angles = [...]string{
	"충격적인 통계나 숫자를 중심으로 설명해",
	"역사적인 발견 에피소드나 비화를 들려줘",
	"조금 무섭거나 오싹한 사실을 강조해줘",
	"사람들이 잘 모르는 아이러니하거나 웃긴 사실을 찾아줘",
	"미래에 일어날 일이나 예측을 중심으로 설명해줘",
	"과학적인 원리를 아주 쉽고 직관적으로 비유해서 설명해줘",
	"감성적이고 로맨틱한 느낌으로 서술해줘",
}

// topics 는 groups 를 순서대로 펼친 목록이다.
var topics = flatten()

func flatten() []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Topics...)
	}
	return out
}

func init() {
	if len(topics) == 0 || len(angles) == 0 {
		panic("catalog: topic and angle lists must not be empty")
	}
}

// Topics 는 전체 주제 목록의 복사본을 반환한다.
func Topics() []string {
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}

// Angles 는 전체 관점 목록의 복사본을 반환한다.
func Angles() []string {
	out := make([]string, len(angles))
	copy(out, angles[:])
	return out
}

func TopicCount() int { return len(topics) }
func AngleCount() int { return len(angles) }

// TopicAt 과 AngleAt 은 범위를 벗어난 인덱스에서 panic 한다.
func TopicAt(i int) string { return topics[i] }
func AngleAt(i int) string { return angles[i] }

// Groups 는 테마별 묶음의 복사본을 반환한다.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		ts := make([]string, len(g.Topics))
		copy(ts, g.Topics)
		out[i] = Group{Theme: g.Theme, Topics: ts}
	}
	return out
}

func Contains(topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func ContainsAngle(angle string) bool {
	for _, a := range angles {
		if a == angle {
			return true
		}
	}
	return false
}
