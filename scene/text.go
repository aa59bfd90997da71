package scene

const introText = `Num despertar envolto em névoas prateadas, o guerreiro abriu os olhos sob um dossel vivo de folhas entrelaçadas que sussurravam histórias.
Seu coração bateu com estranha curiosidade,
pois ali não havia muralhas nem clarins, apenas o murmúrio antigo do vento e o aroma terroso de musgo molhado.

Você certamente acaba achando alguma coisa
se olhar mas nem sempre é a alguma coisa
que você estava procurando. `

const defeatText = `GAME OVER! Suas forças falharam e as sombras venceram.
O véu das eras se fecha em torno de você.
FIM DE JOGO.`

const victoryText = "As névoas se dissipam. O guerreiro triunfou, e a floresta agora sussurra seu nome entre as folhas. VITÓRIA!"
