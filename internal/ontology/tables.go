package ontology

// departmentGroups maps a profile department to the synonym/parent-group
// strings a notice may use to include it. Entries mirror the campus org
// chart plus the loose category labels that show up in extracted text.
var departmentGroups = map[string][]string{
	"경영학과":       {"경영대학", "상경대학", "상경‧경영대학", "경영/경제 계열"},
	"경제학부":       {"경제대학", "상경대학", "상경‧경영대학", "경영/경제 계열"},
	"응용통계학과":     {"상경대학", "상경‧경영대학", "통계데이터사이언스학과", "통계학과"},
	"컴퓨터과학과":     {"공과대학", "첨단컴퓨팅학부", "AI·ICT 관련 학과", "IT 계열", "이공 계열", "인공지능융합대학"},
	"인공지능학과":     {"인공지능융합대학", "첨단컴퓨팅학부", "AI·ICT 관련 학과", "IT 계열", "이공 계열"},
	"전기전자공학부":    {"공과대학", "AI·ICT 관련 학과", "IT 계열", "이공 계열"},
	"생명공학과":      {"생명시스템대학", "바이오 분야", "이공 계열", "자연계"},
	"화학과":        {"이과대학", "바이오 분야", "이공 계열", "자연계"},
	"문헌정보학과":     {"문과대학", "인문사회계열"},
	"국어국문학과":     {"문과대학", "인문사회계열"},
	"의예과":        {"의과대학", "의학계열"},
	"의학과":        {"의과대학", "의학계열"},
	"치과대학":       {"치과대학", "치의예과", "치의학과", "의학계열"},
	"간호학과":       {"간호대학", "의학계열"},
	"약학과":        {"약학대학"},
	"신학과":        {"신과대학"},
	"사회학과":       {"사회과학대학", "인문사회계열"},
	"행정학과":       {"사회과학대학", "인문사회계열"},
	"정치외교학과":     {"사회과학대학", "인문사회계열"},
	"언론홍보영상학부":   {"사회과학대학", "인문사회계열"},
	"사회복지학과":     {"사회과학대학", "인문사회계열"},
	"문화인류학과":     {"사회과학대학", "인문사회계열"},
	"음악대학":       {"음악대학", "교회음악과", "성악과", "피아노과", "관현악과", "작곡과", "예체능계열"},
	"생활과학대학":     {"생활과학대학", "의류환경학과", "식품영양학과", "실내건축학과", "아동가족학과", "생활디자인학과", "인문사회계열", "자연계열"},
	"교육과학대학":     {"교육과학대학", "교육학부", "체육교육학과", "스포츠응용산업학과", "인문사회계열", "예체능계열"},
	"언더우드국제대학":   {"언더우드국제대학", "UIC"},
	"글로벌인재대학":    {"글로벌인재대학", "GLC"},
	"시스템반도체공학과":  {"공과대학", "IT 계열", "이공 계열"},
	"디스플레이융합공학과": {"공과대학", "IT 계열", "이공 계열"},
	"이과대학":       {"이과대학", "수학과", "물리학과", "화학과", "지구시스템과학과", "천문우주학과", "대기과학과", "자연계열", "이공 계열"},
	"공과대학":       {"공과대학", "화공생명공학부", "전기전자공학부", "건축공학과", "도시공학과", "토목환경공학과", "기계공학부", "신소재공학부", "산업공학과", "컴퓨터과학과", "시스템반도체공학과", "디스플레이융합공학과", "IT 계열", "이공 계열", "자연계열"},
	"생명시스템대학":    {"생명시스템대학", "시스템생물학과", "생화학과", "생명공학과", "자연계열", "이공 계열"},
	"인공지능융합대학":   {"인공지능융합대학", "컴퓨터과학과", "인공지능학과", "데이터사이언스융합전공", "AI·ICT 관련 학과", "IT 계열", "이공 계열"},
	"자연계":        {"자연계", "자연계 대학원", "이과대학", "공과대학", "생명시스템대학", "인공지능융합대학", "약학대학", "의과대학", "치과대학", "간호대학"},
	"인문사회계열":     {"인문사회계열", "문과대학", "상경대학", "경영대학", "신과대학", "사회과학대학", "생활과학대학", "교육과학대학"},
	"예체능계열":      {"예체능계열", "음악대학", "체육교육학과", "스포츠응용산업학과"},
}

// gradeLexicon maps grade-level profile text to (level, semester).
// 1학년 1학기 = 1, ..., 4학년 2학기 = 8; graduate semesters start at 9.
// The table is a closed enumeration: extend it, do not infer from text.
var gradeLexicon = map[string]GradeEntry{
	"학부 1학년":      {Level: "학부", Semester: 1},
	"학부 2학년":      {Level: "학부", Semester: 3},
	"학부 3학년":      {Level: "학부", Semester: 5},
	"학부 4학년":      {Level: "학부", Semester: 7},
	"학부 재학생":      {Level: "학부", Semester: 1},
	"학부 졸업예정자":    {Level: "학부", Semester: 7},
	"학부 졸업생":      {Level: "학부", Semester: 9},
	"대학원생":        {Level: "대학원", Semester: 9},
	"대학원 재학생":     {Level: "대학원", Semester: 9},
	"대학원 석사과정":    {Level: "대학원", Semester: 9},
	"대학원 박사과정":    {Level: "대학원", Semester: 13},
	"대학원 석박사통합과정": {Level: "대학원", Semester: 9},
	"대학원 1학기":     {Level: "대학원", Semester: 9},
	"대학원 2학기":     {Level: "대학원", Semester: 10},
	"대학원 3학기":     {Level: "대학원", Semester: 11},
	"대학원 4학기":     {Level: "대학원", Semester: 12},
	"대학원 5학기 이상":  {Level: "대학원", Semester: 13},
	"대학원 졸업생":     {Level: "대학원", Semester: 17},
}

// universalDepartment lists phrases opening a notice to every department.
// Matching strips whitespace first, so "전 계열" also covers "전계열".
var universalDepartment = []string{
	"전계열", "전학과", "모든학과", "누구나", "학과무관",
}

var genderSynonyms = map[string][]string{
	"여성": {"여성", "여학생", "여자", "female", "woman"},
	"남성": {"남성", "남학생", "남자", "male", "man"},
	"무관": {"성별무관", "성별 무관", "남녀무관", "남녀 무관", "성별 제한 없음"},
}

var genderConflicts = map[string][]string{
	"여성": {"남성"},
	"남성": {"여성"},
}

var militarySynonyms = map[string][]string{
	"군필":     {"군필", "병역필", "전역", "served", "completed military service", "군필자"},
	"미필":     {"미필", "병역미필", "unserved", "not completed military service", "보충역"},
	"면제":     {"면제", "병역면제", "exempt", "exemption", "군 면제"},
	"해당없음":   {"여성", "female", "병역 해당 없음"},
	"전문연구요원": {"전문연구요원", "전문연구요원 복무", "specialized research personnel"},
	"무관":     {"병역무관", "병역 무관", "병역 관계 없음", "병역 제한 없음"},
}

// An explicit 군필/면제 requirement contradicts an unserved profile; no
// other military status is ever failed mechanically.
var militaryConflicts = map[string][]string{
	"미필": {"군필", "면제"},
}

var noRestriction = []string{"무관", "상관없음", "제한 없음", "관계 없음"}
