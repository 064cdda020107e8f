package knowledge

// Canned Russian descriptions for the topics the bot knows natively.
// Everything else goes to Wikipedia.
var russianDescriptions = map[string]string{
	"hamster": `Хомяк — небольшое млекопитающее из подсемейства хомяковых. Известны своими защечными мешками, в которых переносят пищу. Популярны в качестве домашних питомцев. Наиболее распространенный вид — сирийский хомяк. Активны в основном ночью.`,

	"hedgehog": `Ёжик (лат. Erinaceus) — млекопитающее из семейства ежовых. Известны своими иголками, которые на самом деле являются видоизмененными волосами. Питаются насекомыми, червями, иногда мелкими позвоночными и фруктами. Активны в основном ночью, на зиму впадают в спячку.`,

	"dog": `Собака (лат. Canis lupus familiaris) — домашнее животное, одно из наиболее популярных животных-компаньонов. Первое одомашненное животное, был одомашнен примерно 15 000 лет назад. Существует множество пород собак, которые различаются по размерам, масти, сложению и поведению.`,

	"cat": `Кошка (лат. Felis catus) — домашнее животное, одно из наиболее популярных «животных-компаньонов». Была одомашнена около 10 000 лет назад на Ближнем Востоке. Кошки являются хищниками и сохранили многие черты своих диких предков.`,

	"elephant": `Слон — самое крупное современное наземное животное. Отличается хоботом, бивнями и большими ушами. Существует три вида слонов: африканский саванный слон, африканский лесной слон и азиатский слон. Слоны живут семейными группами во главе со старшей самкой.`,

	"dolphin": `Дельфины — морские млекопитающие из отряда китообразных. Известны своим высоким интеллектом, игривым поведением и способностью к эхолокации. Спят дельфины особым образом: у них спит только одно полушарие мозга, чтобы они могли продолжать дышать и контролировать свое положение в воде.`,

	"lion": `Лев (лат. Panthera leo) — хищное млекопитающее рода пантер. Второй по величине после тигра представитель семейства кошачьих в мире. Единственные кошачьи, живущие в прайдах. Самцы отличаются гривой.`,

	"tiger": `Тигр (лат. Panthera tigris) — самый крупный и один из самых узнаваемых видов кошачьих. Отличается яркой оранжевой шерстью с черными полосами. Находится под угрозой исчезновения. Обитает в Азии.`,

	"mammal": `Млекопитающие — класс позвоночных животных, основной отличительной особенностью которых является вскармливание детёнышей молоком. Другие характерные черты: волосяной покров, теплокровность, наличие диафрагмы и развитой коры головного мозга.`,

	"artificial intelligence": `Искусственный интеллект (ИИ) — это технология создания компьютерных систем, способных выполнять задачи, требующие человеческого интеллекта: распознавание образов, принятие решений, обучение, понимание естественного языка. ИИ используется в медицине, транспорте, финансах и многих других областях.`,

	"question mark": `Вопросительный знак (?) — знак препинания, ставится обычно в конце предложения для выражения вопроса или сомнения. Встречается в печатных книгах с XVI века, однако для выражения вопроса он закрепляется значительно позже, лишь в XVIII веке.`,
}
